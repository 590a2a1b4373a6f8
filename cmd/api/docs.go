package main

// @title           PDV Varejo API
// @version         1.0
// @description     API para gestão de varejo: catálogo de produtos, PDV, fluxo de caixa e controle de caixa

// @contact.name   Suporte
// @contact.email  suporte@pdv-varejo.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
