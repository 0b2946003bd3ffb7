package helpers

import (
	"net/url"
	"strings"

	"terraform-provider-pleasant/internal/constants"
)

func GetHostUrl(host string) string {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	host = strings.TrimSuffix(host, "/")

	parsed, err := url.Parse(host)
	if err != nil {
		return host
	}

	if parsed.Port() == "" {
		parsed.Host = parsed.Host + ":" + constants.DefaultApiPort
		host = parsed.String()
	}
	return host
}

func GetHostApiBaseUrl(host string) string {
	return strings.TrimSuffix(GetHostUrl(host)+constants.API_PREFIX, "/")
}

func CleanUrlSuffixAndPrefix(url string) string {
	url = strings.TrimPrefix(url, "/")
	url = strings.TrimSuffix(url, "/")
	return url
}
