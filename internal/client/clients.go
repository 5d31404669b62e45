package client

import "github.com/khaled-Y/Arabic-Verb-Conjugator-Trainer/internal/config"

type Clients struct {
	*GeminiAPI
}

func InitClients(cfg config.AIConfig) Clients {
	return Clients{
		GeminiAPI: NewGeminiAPI(cfg),
	}
}
