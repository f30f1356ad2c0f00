// Package swagger is the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Состояние сервиса и бэкендов",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}
                }
            }
        },
        "/api/v1/config/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Конфигурация карты для браузера",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MapConfigResponse"}}
                }
            }
        },
        "/api/v1/places/autocomplete": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Подсказки адреса офиса",
                "parameters": [
                    {"type": "string", "description": "Часть адреса", "name": "input", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AutocompleteResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/office": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Выбор офиса",
                "parameters": [
                    {"description": "Координаты или адрес офиса", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SelectOfficeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SelectOfficeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/route": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Запрос маршрута поездки",
                "parameters": [
                    {"description": "Начало маршрута", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RouteRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/usecase.RouteTicket"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/map": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Текущий вид карты",
                "parameters": [
                    {"type": "integer", "default": 10, "description": "Уровень zoom карты (0-22)", "name": "zoom", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/commute/estimate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Commute"],
                "summary": "Годовая оценка поездок",
                "parameters": [
                    {"description": "Расстояние и время участка", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CommuteEstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommuteEstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorResponse"}}
                }
            }
        },
        "/api/v1/session": {
            "delete": {
                "tags": ["Map"],
                "summary": "Сброс состояния сессии",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "provider": {"type": "string"},
                "cache": {"type": "string"},
                "sessions": {"type": "integer"}
            }
        },
        "dto.MapConfigResponse": {
            "type": "object",
            "properties": {
                "provider": {"type": "string"},
                "api_key": {"type": "string"},
                "ready": {"type": "boolean"},
                "center": {"$ref": "#/definitions/domain.GeoPoint"},
                "zoom": {"type": "integer"},
                "options": {
                    "type": "object",
                    "properties": {
                        "mapId": {"type": "string"},
                        "disableDefaultUI": {"type": "boolean"},
                        "clickableIcons": {"type": "boolean"}
                    }
                }
            }
        },
        "dto.AutocompleteResponse": {
            "type": "object",
            "properties": {
                "suggestions": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "place_id": {"type": "string"},
                            "description": {"type": "string"},
                            "location": {"$ref": "#/definitions/domain.GeoPoint"}
                        }
                    }
                }
            }
        },
        "dto.SelectOfficeRequest": {
            "type": "object",
            "properties": {
                "lat": {"type": "number", "maximum": 90, "minimum": -90},
                "lng": {"type": "number", "maximum": 180, "minimum": -180},
                "address": {"type": "string", "maxLength": 256}
            }
        },
        "dto.SelectOfficeResponse": {
            "type": "object",
            "properties": {
                "office": {"$ref": "#/definitions/domain.GeoPoint"},
                "state": {"type": "string", "enum": ["no_office", "office_selected", "route_ready"]}
            }
        },
        "dto.RouteRequest": {
            "type": "object",
            "required": ["lat", "lng"],
            "properties": {
                "lat": {"type": "number", "maximum": 90, "minimum": -90},
                "lng": {"type": "number", "maximum": 180, "minimum": -180}
            }
        },
        "dto.CommuteEstimateRequest": {
            "type": "object",
            "properties": {
                "distance_meters": {"type": "number", "minimum": 0},
                "duration_seconds": {"type": "number", "minimum": 0},
                "distance_text": {"type": "string"},
                "duration_text": {"type": "string"},
                "locale": {"type": "string"}
            }
        },
        "dto.CommuteEstimateResponse": {
            "type": "object",
            "properties": {
                "shown": {"type": "boolean"},
                "summary": {
                    "type": "object",
                    "properties": {
                        "distance_text": {"type": "string"},
                        "duration_text": {"type": "string"},
                        "days": {"type": "integer"},
                        "cost": {"type": "integer"},
                        "cost_formatted": {"type": "string"}
                    }
                }
            }
        },
        "usecase.RouteTicket": {
            "type": "object",
            "properties": {
                "issued": {"type": "boolean"},
                "token": {"type": "integer"}
            }
        },
        "domain.GeoPoint": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "utils.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Commute Map API",
	Description:      "Office selection, synthetic houses, driving routes and yearly commute cost.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
