// Package docs registers the OpenAPI document served under /swagger.
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
        "/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items by numeric offset",
                "parameters": [
                    {"type": "integer", "description": "Zero-based item offset", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Page size, non-positive values use the default", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.ItemPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        },
        "/items/cursor": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "List items by opaque cursor",
                "parameters": [
                    {"type": "string", "description": "Cursor from paging.next, omit for the first page", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Page size, non-positive values use the default", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.ItemPage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apperr.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "catalog.Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "name": {"type": "string"},
                "created": {"type": "string", "example": "2012-03-20 14:31:05"},
                "updated": {"type": "string", "example": "2012-03-20 14:31:05"}
            }
        },
        "pagination.Paging": {
            "type": "object",
            "properties": {
                "offset": {"type": "string"},
                "limit": {"type": "integer"},
                "next": {"type": "string"}
            }
        },
        "router.ItemPage": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/catalog.Item"}},
                "paging": {"$ref": "#/definitions/pagination.Paging"}
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
	Title:            "Pagekit Paging API",
	Description:      "Reference API serving a catalog with offset and cursor pagination",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
