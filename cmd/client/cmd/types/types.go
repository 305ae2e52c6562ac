package types

type ctxKey string

// ClientAppKey - ключ, под которым *client.App лежит в контексте команды
const ClientAppKey ctxKey = "app"

// JSONOutputKey - значение глобального флага --json
const JSONOutputKey ctxKey = "json"
