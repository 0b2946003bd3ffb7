package helpers

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"terraform-provider-pleasant/internal/clientmodels"
	"terraform-provider-pleasant/internal/constants"

	"github.com/cjlapao/common-go/helper"
	"github.com/hashicorp/terraform-plugin-log/tflog"
	"github.com/pkg/errors"
)

type HttpCallerVerb string

const (
	HttpCallerVerbGet    HttpCallerVerb = "GET"
	HttpCallerVerbPost   HttpCallerVerb = "POST"
	HttpCallerVerbPut    HttpCallerVerb = "PUT"
	HttpCallerVerbDelete HttpCallerVerb = "DELETE"
)

func (v HttpCallerVerb) String() string {
	return string(v)
}

// TlsPolicy is the certificate-trust mode applied to every outbound call.
// The zero value verifies against the system trust store.
type TlsPolicy struct {
	DisableVerification bool
	CaBundlePath        string
}

type HttpCaller struct {
	ctx       context.Context
	tlsPolicy TlsPolicy
	timeout   time.Duration
}

type HttpCallerAuth struct {
	BearerToken string
}

type HttpCallerResponse struct {
	StatusCode int
	Data       interface{}
	ApiError   *clientmodels.APIErrorResponse
}

func NewHttpCaller(ctx context.Context, tlsPolicy TlsPolicy, timeout time.Duration) *HttpCaller {
	if timeout <= 0 {
		timeout = constants.DefaultTimeout
	}

	return &HttpCaller{
		ctx:       ctx,
		tlsPolicy: tlsPolicy,
		timeout:   timeout,
	}
}

func (c *HttpCaller) GetDataFromClient(url string, headers map[string]string, auth *HttpCallerAuth, destination interface{}) (*HttpCallerResponse, error) {
	return c.RequestDataToClient(HttpCallerVerbGet, url, headers, nil, "", auth, destination)
}

func (c *HttpCaller) PostDataToClient(url string, headers map[string]string, data interface{}, auth *HttpCallerAuth, destination interface{}) (*HttpCallerResponse, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, &CallerError{Kind: ErrorKindDecode, Err: errors.Wrap(err, "marshalling request body")}
	}

	return c.RequestDataToClient(HttpCallerVerbPost, url, headers, body, "application/json", auth, destination)
}

// PostFormToClient posts an urlencoded form with no authentication. This is
// only used for the oauth2 token endpoint.
func (c *HttpCaller) PostFormToClient(url string, form url.Values, destination interface{}) (*HttpCallerResponse, error) {
	body := []byte(form.Encode())
	return c.RequestDataToClient(HttpCallerVerbPost, url, nil, body, "application/x-www-form-urlencoded", nil, destination)
}

func (c *HttpCaller) RequestDataToClient(verb HttpCallerVerb, requestUrl string, headers map[string]string, body []byte, contentType string, auth *HttpCallerAuth, destination interface{}) (*HttpCallerResponse, error) {
	tflog.Debug(c.ctx, fmt.Sprintf("%v data from %s", verb, requestUrl))
	clientResponse := HttpCallerResponse{
		StatusCode: 0,
		Data:       nil,
	}

	if destination != nil {
		destType := reflect.TypeOf(destination)
		if destType.Kind() != reflect.Ptr {
			return &clientResponse, &CallerError{Kind: ErrorKindDecode, Reason: "destination must be a pointer type"}
		}
	}

	if requestUrl == "" {
		return &clientResponse, &CallerError{Kind: ErrorKindInvalidUrl, Reason: "url cannot be empty"}
	}

	parsedUrl, err := url.Parse(requestUrl)
	if err != nil || !parsedUrl.IsAbs() {
		return &clientResponse, &CallerError{Kind: ErrorKindInvalidUrl, Reason: requestUrl, Err: err}
	}

	client, err := c.newClient()
	if err != nil {
		return &clientResponse, err
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewBuffer(body)
	}

	req, err := http.NewRequestWithContext(c.ctx, verb.String(), requestUrl, reqBody)
	if err != nil {
		return &clientResponse, &CallerError{Kind: ErrorKindInvalidUrl, Err: errors.Wrap(err, "creating request")}
	}

	if auth != nil && auth.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+auth.BearerToken)
	}

	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Content-Type", contentType)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	response, err := client.Do(req)
	if err != nil {
		return &clientResponse, classifyTransportError(verb, requestUrl, err)
	}
	defer response.Body.Close()

	clientResponse.StatusCode = response.StatusCode
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errMsg clientmodels.APIErrorResponse
		responseBody, bodyErr := io.ReadAll(response.Body)
		if bodyErr == nil {
			if err := json.Unmarshal(responseBody, &errMsg); err == nil && errMsg.Message != "" {
				clientResponse.ApiError = &errMsg
			}
		}
		if clientResponse.ApiError == nil {
			clientResponse.ApiError = &clientmodels.APIErrorResponse{
				Code: int64(response.StatusCode),
			}
		}

		return &clientResponse, &CallerError{
			Kind:       ErrorKindHttpStatus,
			StatusCode: response.StatusCode,
			Reason:     reasonPhrase(response),
		}
	}

	if destination != nil {
		responseBody, err := io.ReadAll(response.Body)
		if err != nil {
			return &clientResponse, &CallerError{Kind: ErrorKindDecode, Err: errors.Wrapf(err, "reading response body from %s", requestUrl)}
		}

		if err := json.Unmarshal(responseBody, destination); err != nil {
			return &clientResponse, &CallerError{Kind: ErrorKindDecode, Err: errors.Wrapf(err, "unmarshalling body from %s", requestUrl)}
		}

		clientResponse.Data = destination
	}

	return &clientResponse, nil
}

// GetAccessToken performs the oauth2 password grant against the server. When
// the server answers 200 but the body carries no access_token field the
// fallback token is returned and usedFallback is set, so callers can surface
// the degraded authentication instead of silently proceeding.
func (c *HttpCaller) GetAccessToken(baseUrl, username, password string) (token string, usedFallback bool, err error) {
	if username == "" {
		return "", false, errors.New("username cannot be empty")
	}

	if password == "" {
		return "", false, errors.New("password cannot be empty")
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", username)
	form.Set("password", password)

	tflog.Debug(c.ctx, "Getting access token from "+baseUrl+constants.TOKEN_PATH+" for user "+username)

	var tokenResponse clientmodels.TokenLoginResponse
	if _, err := c.PostFormToClient(baseUrl+constants.TOKEN_PATH, form, &tokenResponse); err != nil {
		return "", false, err
	}

	if !tokenResponse.HasToken() {
		tflog.Warn(c.ctx, "Token response carried no access_token field, proceeding with the fallback token")
		return constants.FallbackAccessToken, true, nil
	}

	return tokenResponse.AccessToken, false, nil
}

func (c *HttpCaller) newClient() (*http.Client, error) {
	client := &http.Client{
		Timeout: c.timeout,
	}

	if c.tlsPolicy.DisableVerification {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		return client, nil
	}

	if c.tlsPolicy.CaBundlePath != "" {
		if !helper.FileExists(c.tlsPolicy.CaBundlePath) {
			return nil, &CallerError{Kind: ErrorKindConnection, Reason: "ca bundle " + c.tlsPolicy.CaBundlePath + " does not exist"}
		}

		pem, err := helper.ReadFromFile(c.tlsPolicy.CaBundlePath)
		if err != nil {
			return nil, &CallerError{Kind: ErrorKindConnection, Err: errors.Wrap(err, "reading ca bundle")}
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, &CallerError{Kind: ErrorKindConnection, Reason: "no certificates found in ca bundle " + c.tlsPolicy.CaBundlePath}
		}

		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{RootCAs: pool},
		}
	}

	return client, nil
}

func classifyTransportError(verb HttpCallerVerb, url string, err error) *CallerError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &CallerError{Kind: ErrorKindTimeout, Err: errors.Wrapf(err, "%s %s", verb, url)}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &CallerError{Kind: ErrorKindTimeout, Err: errors.Wrapf(err, "%s %s", verb, url)}
	}

	return &CallerError{Kind: ErrorKindConnection, Err: errors.Wrapf(err, "%s %s", verb, url)}
}

func reasonPhrase(response *http.Response) string {
	status := strings.TrimSpace(strings.TrimPrefix(response.Status, fmt.Sprintf("%d", response.StatusCode)))
	if status == "" {
		status = http.StatusText(response.StatusCode)
	}
	return status
}
