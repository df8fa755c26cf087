// Package docs registra a documentação Swagger da API Lojista X.
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
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Cadastrar conta", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/me": {"get": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Usuário atual", "responses": {"200": {"description": "OK"}}}},
        "/plans": {"get": {"tags": ["plans"], "summary": "Listar planos", "responses": {"200": {"description": "OK"}}}},
        "/account": {"get": {"security": [{"Bearer": []}], "tags": ["account"], "summary": "Conta e uso do plano", "responses": {"200": {"description": "OK"}}}},
        "/account/plan": {"put": {"security": [{"Bearer": []}], "tags": ["account"], "summary": "Alterar plano", "responses": {"200": {"description": "OK"}}}},
        "/dashboard": {"get": {"security": [{"Bearer": []}], "tags": ["dashboard"], "summary": "Visão geral", "responses": {"200": {"description": "OK"}}}},
        "/products": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Listar produtos", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Criar produto", "responses": {"201": {"description": "Created"}, "403": {"description": "Limite do plano"}}}
        },
        "/products/summary": {"get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Resumo do estoque", "responses": {"200": {"description": "OK"}}}},
        "/products/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Buscar produto", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Atualizar produto", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Remover produto", "responses": {"200": {"description": "OK"}}}
        },
        "/customers": {
            "get": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Listar clientes", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Criar cliente", "responses": {"201": {"description": "Created"}}}
        },
        "/customers/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Buscar cliente", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Atualizar cliente", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Remover cliente", "responses": {"200": {"description": "OK"}}}
        },
        "/customers/{id}/purchases": {"get": {"security": [{"Bearer": []}], "tags": ["customers"], "summary": "Compras do cliente", "responses": {"200": {"description": "OK"}}}},
        "/sales": {
            "get": {"security": [{"Bearer": []}], "tags": ["sales"], "summary": "Listar vendas", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["sales"], "summary": "Registrar venda", "responses": {"201": {"description": "Created"}, "403": {"description": "Limite do plano"}, "409": {"description": "Estoque insuficiente"}}}
        },
        "/sales/summary": {"get": {"security": [{"Bearer": []}], "tags": ["sales"], "summary": "Resumo de vendas", "responses": {"200": {"description": "OK"}}}},
        "/sales/{id}": {"get": {"security": [{"Bearer": []}], "tags": ["sales"], "summary": "Buscar venda", "responses": {"200": {"description": "OK"}}}},
        "/employees": {
            "get": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Listar funcionários", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Criar funcionário", "responses": {"201": {"description": "Created"}, "403": {"description": "Limite do plano"}}}
        },
        "/employees/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Buscar funcionário", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Atualizar funcionário", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["employees"], "summary": "Remover funcionário", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses": {
            "get": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Listar despesas", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Criar despesa", "responses": {"201": {"description": "Created"}}}
        },
        "/expenses/summary": {"get": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Resumo de despesas", "responses": {"200": {"description": "OK"}}}},
        "/expenses/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Buscar despesa", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Atualizar despesa", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["expenses"], "summary": "Remover despesa", "responses": {"200": {"description": "OK"}}}
        },
        "/checkout/success": {"get": {"tags": ["checkout"], "summary": "Retorno do checkout", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}}
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo contém as informações exportadas da documentação
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Lojista X API",
	Description:      "API de gestão para pequenos lojistas: estoque, vendas, clientes, funcionários, despesas e planos",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
