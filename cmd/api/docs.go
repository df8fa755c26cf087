package main

// @title           Lojista X API
// @version         1.0
// @description     API de gestão para pequenos lojistas: estoque, vendas, clientes, funcionários, despesas e planos

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
