package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"streakfade/internal/domain"
)

type Secrets struct {
	Alpaca   AlpacaSecrets         `json:"alpaca"`
	Db       DbSecrets             `json:"db"`
	Strategy domain.StrategyParams `json:"strategy"`
	// SnapshotFile optionally points at a csv of coarse fundamentals
	// to use instead of the live broker snapshot.
	SnapshotFile string `json:"snapshotFile"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type DbSecrets struct {
	Host      string `json:"host"`
	User      string `json:"user"`
	Port      string `json:"port"`
	Password  string `json:"password"`
	Database  string `json:"database"`
	EnableSsl bool   `json:"enableSsl"`
}

func (t DbSecrets) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSecrets() (*Secrets, error) {
	secretsFile := "/go/src/app/secrets.json"
	if os.Getenv("STREAKFADE_ENV") == "dev" {
		secretsFile = "secrets-dev.json"
	} else if os.Getenv("STREAKFADE_ENV") == "test" {
		secretsFile = "secrets-test.json"
	}
	f, err := os.ReadFile(secretsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", secretsFile, err)
	}

	secrets := Secrets{}
	err = json.Unmarshal(f, &secrets)
	if err != nil {
		return nil, err
	}

	secrets.Strategy = secrets.Strategy.WithDefaults()
	if err := secrets.Strategy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid strategy params: %w", err)
	}

	return &secrets, nil
}
