// Package docs registers the OpenAPI document served at /swagger. Regenerate
// it with `swag init -g cmd/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/login": {
            "post": {
                "description": "Exchanges email and password for a bearer token. Inactive users cannot log in.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/test-answers-score": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Stores every answer and one score row. Students may only submit for themselves; each submission adds a new score.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["User - Tests"],
                "summary": "Submit answers for a test",
                "parameters": [
                    {
                        "description": "Answers",
                        "name": "submission",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.TestSubmitDTO"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SubmissionResultDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "message": {"type": "string"},
                "role_id": {"type": "integer"},
                "token": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "dto.AnswerSubmitDTO": {
            "type": "object",
            "required": ["question_id"],
            "properties": {
                "question_id": {"type": "integer"},
                "selected_option": {"type": "string"}
            }
        },
        "dto.TestSubmitDTO": {
            "type": "object",
            "required": ["answers", "student_id", "test_id"],
            "properties": {
                "answers": {"type": "array", "items": {"$ref": "#/definitions/dto.AnswerSubmitDTO"}},
                "student_id": {"type": "integer"},
                "test_id": {"type": "integer"}
            }
        },
        "dto.SubmissionResultDTO": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "score": {"type": "integer"},
                "score_id": {"type": "integer"},
                "student_id": {"type": "integer"},
                "test_id": {"type": "integer"},
                "total_questions": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "LMS API",
	Description:      "Learning management backend: companies, courses, trainings, attendance, MCQ tests and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
