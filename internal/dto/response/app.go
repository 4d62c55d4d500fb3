package response

type AppInfoResponse struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
	Date        string `json:"date"`
	Status      string `json:"status"`
}
