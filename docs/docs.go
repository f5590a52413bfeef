// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/points": {
            "get": {
                "tags": ["points"],
                "summary": "List points",
                "parameters": [
                    {"type": "boolean", "description": "only points that have comments, with comments embedded", "name": "withComments", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.pointShort"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["points"],
                "summary": "Create a point",
                "parameters": [
                    {"description": "point", "name": "point", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.PointInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.pointShort"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/points/find": {
            "get": {
                "tags": ["points"],
                "summary": "Find the single point matching the given attributes",
                "parameters": [
                    {"type": "string", "description": "exact color, e.g. #112233", "name": "color", "in": "query"},
                    {"type": "number", "description": "exact x", "name": "x", "in": "query"},
                    {"type": "number", "description": "exact y", "name": "y", "in": "query"},
                    {"type": "number", "description": "minimum radius", "name": "minRadius", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pointShort"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/points/{id}": {
            "get": {
                "tags": ["points"],
                "summary": "Get a point",
                "parameters": [
                    {"type": "string", "description": "point id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "set to comments to embed the point's comments", "name": "expand", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pointShort"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["points"],
                "summary": "Replace a point's fields",
                "parameters": [
                    {"type": "string", "description": "point id", "name": "id", "in": "path", "required": true},
                    {"description": "point", "name": "point", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.PointInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.pointShort"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "description": "Comments of the point are kept.",
                "tags": ["points"],
                "summary": "Delete a point",
                "parameters": [
                    {"type": "string", "description": "point id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/points/{pointId}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List the comments of a point",
                "parameters": [
                    {"type": "string", "description": "point id", "name": "pointId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.commentShort"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List comments, optionally filtered",
                "parameters": [
                    {"type": "string", "description": "point id", "name": "pointId", "in": "query"},
                    {"type": "string", "description": "exact background color", "name": "backgroundColor", "in": "query"},
                    {"type": "string", "description": "substring of the text", "name": "text", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.commentShort"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["comments"],
                "summary": "Create a comment",
                "parameters": [
                    {"description": "comment", "name": "comment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CommentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.commentShort"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/comments/{id}": {
            "get": {
                "tags": ["comments"],
                "summary": "Get a comment with its point",
                "parameters": [
                    {"type": "string", "description": "comment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.commentFull"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["comments"],
                "summary": "Replace a comment's fields",
                "parameters": [
                    {"type": "string", "description": "comment id", "name": "id", "in": "path", "required": true},
                    {"description": "comment", "name": "comment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CommentInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.commentFull"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [
                    {"type": "string", "description": "comment id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/snapshots": {
            "post": {
                "tags": ["snapshots"],
                "summary": "Export the board to object storage",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.snapshotResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/api/snapshots/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["snapshots"],
                "summary": "Download a snapshot",
                "parameters": [
                    {"type": "string", "description": "snapshot id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handler.commentFull": {
            "type": "object",
            "properties": {
                "backgroundColor": {"type": "string"},
                "id": {"type": "string"},
                "point": {"$ref": "#/definitions/handler.pointShort"},
                "pointId": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "handler.commentShort": {
            "type": "object",
            "properties": {
                "backgroundColor": {"type": "string"},
                "id": {"type": "string"},
                "pointId": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handler.errorEnvelope"},
                "request_id": {"type": "string"}
            }
        },
        "handler.pointShort": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "string"},
                "radius": {"type": "number"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        },
        "handler.snapshotResponse": {
            "type": "object",
            "properties": {
                "comments": {"type": "integer"},
                "key": {"type": "string"},
                "points": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "model.CommentInput": {
            "type": "object",
            "properties": {
                "backgroundColor": {"type": "string"},
                "pointId": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "model.PointInput": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "radius": {"type": "number"},
                "x": {"type": "number"},
                "y": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PointBoard API",
	Description:      "Points and comments on a shared board.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
