// Package docs 注册 swagger 文档。
// 按 swag init 的输出格式手工维护，修改 controller 上的 @ 注释后要同步这里。
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
        "/chat": {
            "post": {
                "description": "常见关键词直接返回固定回复，其余交给 LLM。context 最多保留最近 5 轮。",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "聊天",
                "parameters": [
                    {
                        "description": "消息和最近的对话",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.ChatRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/controller.ChatResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "缺少 message",
                        "schema": {"$ref": "#/definitions/response.Response"}
                    }
                }
            }
        },
        "/comeback": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "快速回怼",
                "parameters": [
                    {
                        "description": "要回怼的话",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.ComebackRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/controller.ComebackResponse"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "缺少 message",
                        "schema": {"$ref": "#/definitions/response.Response"}
                    }
                }
            }
        },
        "/roast": {
            "post": {
                "description": "分析照片中的人脸、色调、构图，交给 LLM 生成一句吐槽；LLM 不可用时返回固定文案。",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Roast"],
                "summary": "照片吐槽",
                "parameters": [
                    {
                        "type": "file",
                        "description": "照片",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "playful",
                        "description": "风格: savage | playful | sarcastic | absurd",
                        "name": "style",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.PhotoResult"}}}
                            ]
                        }
                    },
                    "400": {
                        "description": "不是图片或无法解码",
                        "schema": {"$ref": "#/definitions/response.Response"}
                    },
                    "413": {
                        "description": "图片太大",
                        "schema": {"$ref": "#/definitions/response.Response"}
                    }
                }
            }
        },
        "/standup": {
            "post": {
                "description": "基于 /roast 返回的 features 生成三段式脱口秀。",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Roast"],
                "summary": "照片脱口秀",
                "parameters": [
                    {
                        "description": "照片特征",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.StandupRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/response.Response"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/controller.StandupResponse"}}}
                            ]
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controller.ChatRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "context": {"type": "array", "items": {"$ref": "#/definitions/model.ChatTurn"}},
                "message": {"type": "string"}
            }
        },
        "controller.ChatResponse": {
            "type": "object",
            "properties": {
                "personality": {"type": "string"},
                "response": {"type": "string"}
            }
        },
        "controller.ComebackRequest": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "context": {"type": "array", "items": {"$ref": "#/definitions/model.ChatTurn"}},
                "message": {"type": "string"}
            }
        },
        "controller.ComebackResponse": {
            "type": "object",
            "properties": {
                "comeback": {"type": "string"}
            }
        },
        "controller.StandupRequest": {
            "type": "object",
            "properties": {
                "duration": {"type": "string"},
                "features": {"$ref": "#/definitions/model.FeatureSummary"}
            }
        },
        "controller.StandupResponse": {
            "type": "object",
            "properties": {
                "routine": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.ChatTurn": {
            "type": "object",
            "properties": {
                "ai": {"type": "string"},
                "user": {"type": "string"}
            }
        },
        "model.ColorStats": {
            "type": "object",
            "properties": {
                "brightness": {"type": "number"},
                "theme": {"type": "string"}
            }
        },
        "model.Composition": {
            "type": "object",
            "properties": {
                "aspect_ratio": {"type": "number"},
                "orientation": {"type": "string"},
                "resolution": {"type": "string"}
            }
        },
        "model.FaceFeature": {
            "type": "object",
            "properties": {
                "height": {"type": "integer"},
                "ratio": {"type": "number"},
                "size": {"type": "string"},
                "width": {"type": "integer"}
            }
        },
        "model.FaceStats": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "features": {"type": "array", "items": {"$ref": "#/definitions/model.FaceFeature"}}
            }
        },
        "model.FeatureSummary": {
            "type": "object",
            "properties": {
                "colors": {"$ref": "#/definitions/model.ColorStats"},
                "composition": {"$ref": "#/definitions/model.Composition"},
                "faces": {"$ref": "#/definitions/model.FaceStats"},
                "objects": {"$ref": "#/definitions/model.ObjectHints"}
            }
        },
        "model.ObjectHints": {
            "type": "object",
            "properties": {
                "glasses": {"type": "boolean"},
                "multiple_people": {"type": "boolean"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "msg": {"type": "string"}
            }
        },
        "service.PhotoResult": {
            "type": "object",
            "properties": {
                "features": {"$ref": "#/definitions/model.FeatureSummary"},
                "roast": {"type": "string"},
                "style": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8001",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "AI Roast Master API",
	Description:      "上传照片，让 AI 用段子回敬你",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
