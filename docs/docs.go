// Package docs holds the OpenAPI document served at /swagger.
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
    "definitions": {
        "http.analyzeReq": {
            "properties": {
                "url": {
                    "maxLength": 2048,
                    "type": "string"
                }
            },
            "required": [
                "url"
            ],
            "type": "object"
        },
        "http.analyzeResp": {
            "properties": {
                "preview": {
                    "type": "string"
                },
                "session": {
                    "$ref": "#/definitions/http.sessionResp"
                }
            },
            "type": "object"
        },
        "http.askReq": {
            "properties": {
                "question": {
                    "maxLength": 2000,
                    "type": "string"
                }
            },
            "required": [
                "question"
            ],
            "type": "object"
        },
        "http.askResp": {
            "properties": {
                "messages": {
                    "type": "integer"
                },
                "turn": {
                    "$ref": "#/definitions/http.turnResp"
                }
            },
            "type": "object"
        },
        "http.pageResp": {
            "properties": {
                "description": {
                    "type": "string"
                },
                "final_url": {
                    "type": "string"
                },
                "fetched_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "raw_length": {
                    "type": "integer"
                },
                "site_name": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "truncated": {
                    "type": "boolean"
                }
            },
            "type": "object"
        },
        "http.sessionResp": {
            "properties": {
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "has_context": {
                    "type": "boolean"
                },
                "history": {
                    "items": {
                        "$ref": "#/definitions/http.turnResp"
                    },
                    "type": "array"
                },
                "id": {
                    "type": "string"
                },
                "page": {
                    "$ref": "#/definitions/http.pageResp"
                },
                "stats": {
                    "$ref": "#/definitions/http.statsResp"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "http.statsDetailResp": {
            "properties": {
                "characters": {
                    "type": "integer"
                },
                "has_context": {
                    "type": "boolean"
                },
                "messages": {
                    "type": "integer"
                },
                "url": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "http.statsResp": {
            "properties": {
                "characters": {
                    "type": "integer"
                },
                "messages": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "http.turnResp": {
            "properties": {
                "answer": {
                    "type": "string"
                },
                "asked_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "model": {
                    "type": "string"
                },
                "provider": {
                    "type": "string"
                },
                "question": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "response.Resp": {
            "properties": {
                "data": {},
                "error_code": {
                    "type": "integer"
                },
                "errors": {},
                "message": {
                    "type": "string"
                }
            },
            "type": "object"
        }
    },
    "paths": {
        "/api/v1/sessions": {
            "post": {
                "description": "Starts an empty session. No website is loaded until analyze is called.",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Create a chat session",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}": {
            "delete": {
                "description": "Drops the session with its website content and history.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Delete a session",
                "tags": [
                    "Sessions"
                ]
            },
            "get": {
                "description": "Returns the analyzed URL, page metadata, conversation history and statistics.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Get a chat session",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}/analyze": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Fetches the URL, extracts its visible text and stores it as the session context.\nAny previous context and history are cleared first, even if the fetch fails.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Website to analyze",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.analyzeReq"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.analyzeResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "422": {
                        "description": "No extractable content",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "502": {
                        "description": "Website could not be fetched",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "504": {
                        "description": "Website timed out",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Analyze a website",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}/ask": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Answers the question from the analyzed website content and records the turn.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Question",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.askReq"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.askResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "409": {
                        "description": "Session reset while answering",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "503": {
                        "description": "Model unavailable",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Ask a question",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}/clear": {
            "post": {
                "description": "Drops the history but keeps the analyzed website.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Clear conversation history",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}/new-website": {
            "post": {
                "description": "Clears the URL, the extracted context and the history.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.sessionResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Forget the analyzed website",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/api/v1/sessions/{id}/stats": {
            "get": {
                "description": "Returns the analyzed URL, the context size in characters and the message count.",
                "parameters": [
                    {
                        "description": "Session ID",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.statsDetailResp"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Get session statistics",
                "tags": [
                    "Sessions"
                ]
            }
        },
        "/health": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "description": "Check if the API is healthy",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "additionalProperties": true,
                            "type": "object"
                        }
                    }
                },
                "summary": "Health Check",
                "tags": [
                    "Health"
                ]
            }
        },
        "/live": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "description": "Check if the API is alive",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {
                            "additionalProperties": true,
                            "type": "object"
                        }
                    }
                },
                "summary": "Liveness Check",
                "tags": [
                    "Health"
                ]
            }
        },
        "/ready": {
            "get": {
                "consumes": [
                    "application/json"
                ],
                "description": "Check if the API is ready to serve traffic",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {
                            "additionalProperties": true,
                            "type": "object"
                        }
                    },
                    "503": {
                        "description": "No model available",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                },
                "summary": "Readiness Check",
                "tags": [
                    "Health"
                ]
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "WebWhisper API",
	Description:      "Chat with any website: analyze a URL, then ask questions answered from its content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
