// Package docs registers the OpenAPI document served at /swagger. Keep it in
// step with the annotations on the intake handlers.
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
    "paths": {
        "/api/intakes": {
            "get": {
                "security": [{"BasicAuth": []}],
                "description": "Unpaginated. sort is a field name, prefixed with - for descending order.",
                "produces": ["application/json"],
                "tags": ["Intakes"],
                "summary": "List intakes",
                "parameters": [
                    {"enum": ["new", "in_review", "resolved"], "type": "string", "description": "Status filter", "name": "status", "in": "query"},
                    {"enum": ["billing", "technical_support", "new_matter_project", "other"], "type": "string", "description": "Category filter", "name": "category", "in": "query"},
                    {"type": "string", "default": "-created_at", "description": "Sort expression", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"allOf": [{"$ref": "#/definitions/utils.ListResponse"}, {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/dto.IntakeDTO"}}}}]}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "post": {
                "description": "Public endpoint. The category is assigned by keyword classification.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intakes"],
                "summary": "Submit an intake",
                "parameters": [
                    {"description": "Intake submission", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.CreateIntakeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.IntakeDTO"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/intakes/stats": {
            "get": {
                "security": [{"BasicAuth": []}],
                "produces": ["application/json"],
                "tags": ["Intakes"],
                "summary": "Intake statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.StatsDTO"}}}]}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/api/intakes/{id}": {
            "get": {
                "security": [{"BasicAuth": []}],
                "produces": ["application/json"],
                "tags": ["Intakes"],
                "summary": "Get an intake",
                "parameters": [
                    {"type": "integer", "description": "Intake ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.IntakeDTO"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            },
            "patch": {
                "security": [{"BasicAuth": []}],
                "description": "Changes status and/or internal notes. At least one field is required.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Intakes"],
                "summary": "Update an intake",
                "parameters": [
                    {"type": "integer", "description": "Intake ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intake.UpdateIntakeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/utils.APIResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.IntakeDTO"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness and database check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.APIResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.IntakeDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "description": {"type": "string"},
                "urgency": {"type": "integer"},
                "category": {"type": "string"},
                "status": {"type": "string"},
                "internal_notes": {"type": "string"},
                "internal_notes_html": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "dto.StatsDTO": {
            "type": "object",
            "properties": {
                "by_status": {"type": "object", "additionalProperties": {"type": "integer"}},
                "by_category": {"type": "object", "additionalProperties": {"type": "integer"}},
                "total": {"type": "integer"}
            }
        },
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "intake.CreateIntakeRequest": {
            "type": "object",
            "required": ["description", "email", "name", "urgency"],
            "properties": {
                "name": {"type": "string", "maxLength": 100, "example": "Jane Doe"},
                "email": {"type": "string", "maxLength": 254, "example": "jane@example.com"},
                "description": {"type": "string", "maxLength": 5000, "minLength": 10, "example": "I was charged twice on my last invoice"},
                "urgency": {"type": "integer", "maximum": 5, "minimum": 1, "example": 3}
            }
        },
        "intake.UpdateIntakeRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["new", "in_review", "resolved"], "example": "in_review"},
                "internal_notes": {"type": "string", "maxLength": 5000, "example": "Called the client back"}
            }
        },
        "utils.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {"$ref": "#/definitions/utils.ErrorInfo"}
            }
        },
        "utils.ErrorInfo": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}}
            }
        },
        "utils.ListResponse": {
            "type": "object",
            "properties": {
                "items": {},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {
            "type": "basic"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Intake API",
	Description:      "Submission and staff review of support intakes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
