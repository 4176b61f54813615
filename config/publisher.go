package config

import (
	"fmt"
	"os"
	"strconv"
)

type PublisherConfig struct {
	APIURL      string
	AccessToken string
	AccountID   string
}

func GetPublisherConfig() (*PublisherConfig, error) {
	apiURL := os.Getenv("PUBLISH_API_URL")
	if apiURL == "" {
		return nil, fmt.Errorf("PUBLISH_API_URL must be set")
	}

	accessToken := os.Getenv("PLATFORM_ACCESS_TOKEN")
	if accessToken == "" {
		return nil, fmt.Errorf("PLATFORM_ACCESS_TOKEN must be set")
	}

	accountID := os.Getenv("PLATFORM_ACCOUNT_ID")
	if accountID == "" {
		return nil, fmt.Errorf("PLATFORM_ACCOUNT_ID must be set")
	}
	if _, err := strconv.ParseInt(accountID, 10, 64); err != nil {
		return nil, fmt.Errorf("PLATFORM_ACCOUNT_ID must be numeric")
	}

	return &PublisherConfig{
		APIURL:      apiURL,
		AccessToken: accessToken,
		AccountID:   accountID,
	}, nil
}
