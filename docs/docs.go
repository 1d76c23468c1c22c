// Package docs registers the OpenAPI document served under /swagger. Keep it
// in step with the handler annotations when routes change.
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
        "/v1/session/join": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Join the household",
                "parameters": [
                    {"description": "New member", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.joinRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/switch": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Switch the active member",
                "parameters": [
                    {"description": "Member to switch to", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.switchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/session/active": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get the active member",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List household members",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/users/{id}/role": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Toggle a member's role",
                "parameters": [
                    {"type": "string", "description": "Member id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List calendar items",
                "parameters": [
                    {"type": "string", "description": "ALL, EVENT, GOAL or UPDATE", "name": "type", "in": "query"},
                    {"type": "string", "description": "Only items on this date (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.eventListResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Add a calendar item",
                "parameters": [
                    {"type": "string", "description": "Idempotency key to prevent duplicate submissions", "name": "Idempotency-Key", "in": "header"},
                    {"description": "Calendar item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.eventResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/events/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["events"],
                "summary": "Delete a calendar item",
                "parameters": [
                    {"type": "string", "description": "Event id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/calendar": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "Month view",
                "parameters": [
                    {"type": "string", "description": "Current view date (YYYY-MM-DD), defaults to today", "name": "date", "in": "query"},
                    {"type": "string", "description": "prev, next or today", "name": "nav", "in": "query"},
                    {"type": "string", "description": "ALL, EVENT, GOAL or UPDATE", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.monthResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/calendar/export.ics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["text/calendar"],
                "tags": ["calendar"],
                "summary": "Export as iCalendar",
                "parameters": [
                    {"type": "string", "description": "ALL, EVENT, GOAL or UPDATE", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/v1/suggestions": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["suggestions"],
                "summary": "Suggest a family activity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.suggestionResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.joinRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "passphrase": {"type": "string"}}
        },
        "handler.switchRequest": {
            "type": "object",
            "required": ["user_id"],
            "properties": {"user_id": {"type": "string"}, "passphrase": {"type": "string"}}
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "avatar_color": {"type": "string"},
                "initial": {"type": "string"},
                "active": {"type": "boolean"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "expires_at": {"type": "string"},
                "user": {"$ref": "#/definitions/handler.userResponse"}
            }
        },
        "handler.addEventRequest": {
            "type": "object",
            "required": ["date", "title", "type"],
            "properties": {
                "date": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string", "enum": ["EVENT", "GOAL", "UPDATE"]}
            }
        },
        "handler.eventResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "date": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "created_by": {"type": "string"},
                "creator_name": {"type": "string"},
                "can_delete": {"type": "boolean"}
            }
        },
        "handler.eventListResponse": {
            "type": "object",
            "properties": {
                "filter": {"type": "string"},
                "date": {"type": "string"},
                "count": {"type": "integer"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/handler.eventResponse"}}
            }
        },
        "handler.dayResponse": {
            "type": "object",
            "properties": {
                "day": {"type": "integer"},
                "date": {"type": "string"},
                "is_today": {"type": "boolean"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/handler.eventResponse"}}
            }
        },
        "handler.legendResponse": {
            "type": "object",
            "properties": {"type": {"type": "string"}, "label": {"type": "string"}, "color": {"type": "string"}}
        },
        "handler.monthResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "year": {"type": "integer"},
                "month": {"type": "integer"},
                "current": {"type": "string"},
                "today": {"type": "string"},
                "filter": {"type": "string"},
                "start_day_of_week": {"type": "integer"},
                "days_in_month": {"type": "integer"},
                "weekdays": {"type": "array", "items": {"type": "string"}},
                "cells": {"type": "array", "items": {"$ref": "#/definitions/handler.dayResponse"}},
                "legend": {"type": "array", "items": {"$ref": "#/definitions/handler.legendResponse"}}
            }
        },
        "handler.suggestionResponse": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Family Calendar Hub API",
	Description:      "Shared household calendar: members, events, goals and updates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
