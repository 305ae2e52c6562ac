package health

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервиса и хранилища
type Response struct {
	Status  string `json:"status" example:"OK" doc:"Health status of the service"`
	Storage string `json:"storage" enum:"up,none" example:"up" doc:"Storage state: up when ping succeeds, none when no storage is wired"`
}
