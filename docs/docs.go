// Package docs регистрирует описание HTTP API для /docs.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/register": {"post": {"tags": ["Auth"], "summary": "Регистрация пользователя", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}},
        "/login": {"post": {"tags": ["Auth"], "summary": "Авторизация пользователя", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/logout": {"post": {"tags": ["Auth"], "summary": "Выход из системы", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/dashboard": {"get": {"tags": ["Tasks"], "summary": "Сводка задач", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/tasks": {
            "get": {"tags": ["Tasks"], "summary": "Список задач", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}},
            "post": {"tags": ["Tasks"], "summary": "Создать задачу", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/tasks/{id}": {
            "get": {"tags": ["Tasks"], "summary": "Получить задачу", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"tags": ["Tasks"], "summary": "Обновить задачу", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["Tasks"], "summary": "Удалить задачу", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/tasks/{id}/complete": {"post": {"tags": ["Tasks"], "summary": "Отметить задачу выполненной", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/chatbot": {"post": {"tags": ["Chatbot"], "summary": "Вопрос чат-боту", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}}},
        "/reminders": {"get": {"tags": ["Reminders"], "summary": "Проверить напоминания", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "429": {"description": "Too Many Requests"}}}},
        "/admin/dashboard": {"get": {"tags": ["Admin"], "summary": "Сводка администратора", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/admin/users": {"get": {"tags": ["Admin"], "summary": "Пользователи", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/admin/users/{uid}/toggle": {"post": {"tags": ["Admin"], "summary": "Заблокировать или разблокировать пользователя", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}},
        "/admin/users/{uid}": {"delete": {"tags": ["Admin"], "summary": "Удалить пользователя", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}}}
    }
}`

// SwaggerInfo метаданные API, подставляемые в шаблон.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Work Reminder API",
	Description:      "Task tracker with reminders polling, a chat bot and an admin panel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
