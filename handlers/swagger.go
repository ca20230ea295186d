package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>SaaS Landing API — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "SaaS Landing API", "version": "v0.1.0" },
  "paths": {
    "/auth/signup": {
      "post": {
        "summary": "Register a new user",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","password_hash","salt"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"password_hash":{"type":"string"},"salt":{"type":"string"}}}}}},
        "responses": { "200": { "description": "user created" }, "400": { "description": "validation error or email already registered" } }
      }
    },
    "/auth/signin": {
      "post": { "summary": "Check credentials", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email","password_hash"],"properties":{"email":{"type":"string"},"password_hash":{"type":"string"}}}}}}, "responses": { "200": { "description": "credentials valid" }, "404": { "description": "user not found" }, "401": { "description": "invalid credentials" } } }
    },
    "/blog": {
      "get": { "summary": "List published posts, newest first", "responses": { "200": { "description": "list of posts" } } },
      "post": { "summary": "Create a post", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","slug","content","author"],"properties":{"title":{"type":"string"},"slug":{"type":"string"},"excerpt":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"published":{"type":"boolean","default":true}}}}}}, "responses": { "200": { "description": "post created" }, "400": { "description": "validation error or slug already exists" } } }
    },
    "/blog/{slug}": {
      "get": { "summary": "Get a post by slug (any publish status)", "parameters": [{"name":"slug","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "the post" }, "404": { "description": "post not found" } } }
    },
    "/contact": {
      "post": { "summary": "Submit a contact message", "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","message"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"message":{"type":"string"},"subject":{"type":"string"}}}}}}, "responses": { "200": { "description": "message received" } } }
    },
    "/test": { "get": { "summary": "Store diagnostics", "responses": { "200": { "description": "diagnostic object, never fails" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } }
  }
}`
