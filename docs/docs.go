// Package docs registers the OpenAPI document served under /swagger/. It
// follows the layout of swag init output and is kept in sync with the handler
// annotations by hand.
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
        "/calculator": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Calculator"
                ],
                "summary": "Gold value calculator",
                "description": "Value of a weight of gold at today's simulated price",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency code",
                        "name": "currency",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Weight, in the given unit",
                        "name": "weight",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Purity label, defaults to 24k",
                        "name": "purity",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Unit, defaults to gram",
                        "name": "unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.GoldValue"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/convert": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Converter"
                ],
                "summary": "Convert an amount between currencies",
                "parameters": [
                    {
                        "type": "number",
                        "description": "Amount",
                        "name": "amount",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Source currency",
                        "name": "from",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Target currency",
                        "name": "to",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.ConvertResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/currencies": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Reference"
                ],
                "summary": "List supported currencies",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetCurrenciesResponse"
                        }
                    }
                }
            }
        },
        "/messages": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "Translated UI messages",
                "description": "Messages for the requested language, or the active one. Missing entries fall back to English.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Language code",
                        "name": "lang",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetMessagesResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/preferences/language": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "Active UI language",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetLanguageResponse"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "Change the UI language",
                "parameters": [
                    {
                        "description": "Language code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SetLanguageRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetLanguageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/prices/{code}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Prices"
                ],
                "summary": "Current gold price",
                "description": "Simulated price for one unit of gold in the given currency. Unknown currencies are priced as USD, unknown purities as 24k and unknown units as grams.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Purity label (24k, 22k, 21k, 18k, 14k, 12k, 10k)",
                        "name": "purity",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Unit (gram, ounce, kilo)",
                        "name": "unit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetPriceResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/prices/{code}/history": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Prices"
                ],
                "summary": "Price history",
                "description": "Daily 24k price per gram, oldest first, ending today. Every period is generated at day granularity.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period (1d, 1w, 1m, 6m, 1y), defaults to 1m",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GetHistoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/prices/{code}/history.csv": {
            "get": {
                "produces": [
                    "text/csv"
                ],
                "tags": [
                    "Prices"
                ],
                "summary": "Download price history as CSV",
                "description": "Same series as the history endpoint, as a \"date,price\" CSV attachment named gold-prices-<code>-<period>.csv",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Currency code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period (1d, 1w, 1m, 6m, 1y), defaults to 1m",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/rates/{from}/{to}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Converter"
                ],
                "summary": "Exchange rate between two currencies",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Source currency",
                        "name": "from",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Target currency",
                        "name": "to",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ExchangeRate"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        },
        "/ticker": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Prices"
                ],
                "summary": "Latest refreshed prices",
                "description": "24k price per gram for every supported currency, as of the last scheduled refresh",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/gold.TickerSnapshot"
                        }
                    },
                    "503": {
                        "description": "ticker not refreshed yet",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Currency": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "MAD"
                },
                "symbol": {
                    "type": "string",
                    "example": "DH"
                },
                "name": {
                    "type": "string",
                    "example": "Moroccan Dirham"
                }
            }
        },
        "domain.ExchangeRate": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "example": "USD"
                },
                "to": {
                    "type": "string",
                    "example": "EUR"
                },
                "rate": {
                    "type": "number",
                    "example": 0.92
                },
                "timestamp": {
                    "type": "integer",
                    "example": 1760832000000
                }
            }
        },
        "domain.GoldPrice": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "MAD"
                },
                "symbol": {
                    "type": "string",
                    "example": "DH"
                },
                "price": {
                    "type": "number",
                    "example": 959
                },
                "timestamp": {
                    "type": "integer",
                    "example": 1760832000000
                },
                "change": {
                    "type": "number",
                    "example": 9.5
                },
                "change_percentage": {
                    "type": "number",
                    "example": 1
                },
                "purity": {
                    "type": "string",
                    "example": "24k"
                },
                "unit": {
                    "type": "string",
                    "example": "gram"
                }
            }
        },
        "domain.GoldValue": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "MAD"
                },
                "symbol": {
                    "type": "string",
                    "example": "DH"
                },
                "purity": {
                    "type": "string",
                    "example": "18k"
                },
                "unit": {
                    "type": "string",
                    "example": "gram"
                },
                "weight": {
                    "type": "number",
                    "example": 10
                },
                "price_per_unit": {
                    "type": "number",
                    "example": 719.25
                },
                "value": {
                    "type": "number",
                    "example": 7192.46
                }
            }
        },
        "domain.HistoryPoint": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "example": "2026-10-19"
                },
                "price": {
                    "type": "number",
                    "example": 951.32
                }
            }
        },
        "gold.TickerSnapshot": {
            "type": "object",
            "properties": {
                "exec_id": {
                    "type": "string"
                },
                "refreshed_at": {
                    "type": "string"
                },
                "prices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.GoldPrice"
                    }
                }
            }
        },
        "handler.ConvertResponse": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "number",
                    "example": 100
                },
                "from": {
                    "type": "string",
                    "example": "USD"
                },
                "to": {
                    "type": "string",
                    "example": "EUR"
                },
                "result": {
                    "type": "number",
                    "example": 92
                }
            }
        },
        "handler.GetCurrenciesResponse": {
            "type": "object",
            "properties": {
                "currencies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Currency"
                    }
                }
            }
        },
        "handler.GetHistoryResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "MAD"
                },
                "period": {
                    "type": "string",
                    "example": "1w"
                },
                "points": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.HistoryPoint"
                    }
                }
            }
        },
        "handler.GetLanguageResponse": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string",
                    "example": "en"
                },
                "supported": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.GetMessagesResponse": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string",
                    "example": "fr"
                },
                "messages": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.GetPriceResponse": {
            "type": "object",
            "properties": {
                "currency": {
                    "type": "string",
                    "example": "MAD"
                },
                "symbol": {
                    "type": "string",
                    "example": "DH"
                },
                "price": {
                    "type": "number",
                    "example": 959
                },
                "timestamp": {
                    "type": "integer",
                    "example": 1760832000000
                },
                "change": {
                    "type": "number",
                    "example": 9.5
                },
                "change_percentage": {
                    "type": "number",
                    "example": 1
                },
                "purity": {
                    "type": "string",
                    "example": "24k"
                },
                "unit": {
                    "type": "string",
                    "example": "gram"
                },
                "change_formatted": {
                    "type": "string",
                    "example": "+1.00%"
                }
            }
        },
        "handler.SetLanguageRequest": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string"
                }
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Gold Price API",
	Description:      "Simulated gold prices per currency, purity and unit, with history, CSV export, a currency converter and UI preferences.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
