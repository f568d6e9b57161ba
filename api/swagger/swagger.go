package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Maplewood Student Portal Gateway",
        "description": "Course catalog, enrollment and dashboard gateway for the Maplewood student portal",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Portal sign-in and session status"},
        {"name": "Courses", "description": "Course catalogs and availability cards"},
        {"name": "Enrollment", "description": "Course enrollment attempts"},
        {"name": "Dashboard", "description": "Student dashboard views and transcript"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in with portal credentials",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current session status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/courses/": {
            "get": {
                "tags": ["Courses"],
                "summary": "Full course catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/courses/semester": {
            "get": {
                "tags": ["Courses"],
                "summary": "Courses offered this semester",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/courses/student": {
            "get": {
                "tags": ["Courses"],
                "summary": "Courses the signed-in student is eligible for",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/courses/cards": {
            "get": {
                "tags": ["Courses"],
                "summary": "Course cards with availability flags",
                "parameters": [
                    {"name": "filter", "in": "query", "type": "string", "enum": ["all", "this-semester", "available-for-you"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/courses/enroll/c/{courseId}": {
            "post": {
                "tags": ["Enrollment"],
                "summary": "Enroll the signed-in student in a course",
                "parameters": [
                    {"name": "courseId", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Enrolled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Enrollment conflict", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard/student/course-history": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Course history across all semesters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard/student/enrolled-courses": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Active-semester enrollments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard/student/info": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard header metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard/student/transcript": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Download the course history as a transcript",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Transcript document"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "CourseInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "credits": {"type": "number"},
                "hoursPerWeek": {"type": "integer"},
                "specialization": {"type": "string"},
                "prerequisite": {"type": "string"},
                "courseType": {"type": "string"},
                "gradeLevelMin": {"type": "integer"},
                "gradeLevelMax": {"type": "integer"}
            }
        },
        "CourseCardInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "name": {"type": "string"},
                "credits": {"type": "number"},
                "specialization": {"type": "string"},
                "availableForYou": {"type": "boolean"},
                "availableThisSemester": {"type": "boolean"}
            }
        },
        "EnrollmentConflict": {
            "type": "object",
            "properties": {
                "enrolled": {"type": "boolean"},
                "messageCode": {"type": "string"},
                "courseId": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "StudentInfo": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "gradeLevel": {"type": "integer"},
                "status": {"type": "string"},
                "earnedCredits": {"type": "number"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
