// Package docs holds the swagger description of the billing API. Regenerate with
// `swag init -g cmd/billing_backend/main.go -o cmd/docs` after changing handler annotations.
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
        "/jobs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "List jobs", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Create a job", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created"}}}
        },
        "/jobs/{jobID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Get a job", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Job not found"}}}
        },
        "/jobs/{jobID}/billing": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Update job billing", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Job billing is closed"}}}
        },
        "/jobs/{jobID}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Update job status", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/jobs/{jobID}/invoice": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Set invoice number", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Job closed or invoice number already used"}}}
        },
        "/jobs/{jobID}/close": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["jobs"], "summary": "Close job billing", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Job billing is already closed"}}}
        },
        "/jobs/{jobID}/payments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "List payments", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Record a payment", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Job billing is closed"}}}
        },
        "/jobs/{jobID}/payments/{paymentID}": {
            "delete": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Void a payment", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}, {"type": "string", "name": "paymentID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/accounts/overview": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Accounts overview", "parameters": [{"type": "string", "default": "all", "name": "scope", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/jobs/{jobID}/ledger": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Job ledger", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/jobs/{jobID}/reconcile": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Reconcile an invoice", "parameters": [{"type": "string", "name": "jobID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Workshop Billing API",
	Description:      "Vehicle intake, payments and accounts reconciliation for a workshop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
