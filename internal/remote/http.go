package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"chartleap/internal/domain"
)

// HTTPClient plots through a chartleap server.
type HTTPClient struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base, e.g. http://localhost:8080.
func NewHTTP(base string) *HTTPClient {
	return &HTTPClient{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

// Plot sends the batch to POST /plot.
func (c *HTTPClient) Plot(equations []string) (domain.PlotResult, error) {
	var out domain.PlotResult
	in := struct {
		Equations []string `json:"equations"`
	}{Equations: equations}
	if err := c.post("/plot", in, &out); err != nil {
		return domain.PlotResult{}, err
	}
	return out, nil
}

// Classify asks POST /classify for the category of equation.
func (c *HTTPClient) Classify(equation string) (domain.ClassificationSummary, error) {
	var out domain.ClassificationSummary
	in := struct {
		Equation string `json:"equation"`
	}{Equation: equation}
	if err := c.post("/classify", in, &out); err != nil {
		return domain.ClassificationSummary{}, err
	}
	return out, nil
}

// Healthy reports whether GET /healthz answers ok.
func (c *HTTPClient) Healthy() error {
	resp, err := c.HTTP.Get(c.Base + "/healthz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("server get /healthz: %s", resp.Status)
	}
	return nil
}

func (c *HTTPClient) post(path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error != "" {
			return fmt.Errorf("server post %s: %s: %s", path, resp.Status, e.Error)
		}
		return fmt.Errorf("server post %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.PlotService = (*HTTPClient)(nil)
