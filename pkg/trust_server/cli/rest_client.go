package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/agenttrust/agenttrust/pkg/trust_server/api"
	"github.com/agenttrust/agenttrust/pkg/trust_server/audit"
	"github.com/agenttrust/agenttrust/pkg/trust_server/cert_authority"
	"github.com/agenttrust/agenttrust/pkg/trust_server/model"
	"github.com/agenttrust/agenttrust/pkg/trust_server/storage"
	"github.com/agenttrust/agenttrust/pkg/util"
)

type RestClient struct {
	requester string
	server    string // http://server/
}

func NewRestClient(server, requester string) *RestClient {
	return &RestClient{
		requester: requester,
		server:    server,
	}
}

func (r *RestClient) IssueCert(rawRequest []byte) (model.Certificate, error) {
	path := "/cert"
	cert := model.Certificate{}
	if err := r.execute(http.MethodPost, path, bytes.NewReader(rawRequest), &cert); err != nil {
		return model.Certificate{}, err
	}
	return cert, nil
}

func (r *RestClient) RevokeCert(certID, revokerDID, reason string) (model.Certificate, error) {
	path := fmt.Sprintf("/cert/%s", certID)
	req := cert_authority.RevokeCertificateRequest{
		Reason:     reason,
		RevokerDID: revokerDID,
	}

	cert := model.Certificate{}
	if err := r.execute(http.MethodDelete, path, util.StructToJSONReader(req), &cert); err != nil {
		return model.Certificate{}, err
	}
	return cert, nil
}

func (r *RestClient) ListCert(offset, limit int, subjectDID string) (storage.ListCertificatesResponse, error) {
	path := fmt.Sprintf("/cert?offset=%d&limit=%d", offset, limit)
	if subjectDID != "" {
		path += "&did=" + url.QueryEscape(subjectDID)
	}
	certs := storage.ListCertificatesResponse{}
	if err := r.execute(http.MethodGet, path, nil, &certs); err != nil {
		return storage.ListCertificatesResponse{}, err
	}
	return certs, nil
}

func (r *RestClient) GetCert(certID string) (model.Certificate, error) {
	path := fmt.Sprintf("/cert/%s", certID)
	cert := model.Certificate{}
	if err := r.execute(http.MethodGet, path, nil, &cert); err != nil {
		return model.Certificate{}, err
	}
	return cert, nil
}

func (r *RestClient) VerifyCert(certID string) (cert_authority.VerifyResult, error) {
	path := fmt.Sprintf("/cert/%s/verify", certID)
	result := cert_authority.VerifyResult{}
	if err := r.execute(http.MethodPost, path, nil, &result); err != nil {
		return cert_authority.VerifyResult{}, err
	}
	return result, nil
}

func (r *RestClient) GetCACert() (model.Certificate, error) {
	cert := model.Certificate{}
	if err := r.execute(http.MethodGet, "/ca_cert", nil, &cert); err != nil {
		return model.Certificate{}, err
	}
	return cert, nil
}

func (r *RestClient) GetRevocationList() (model.RevocationList, error) {
	list := model.RevocationList{}
	if err := r.execute(http.MethodGet, "/revocation_list", nil, &list); err != nil {
		return model.RevocationList{}, err
	}
	return list, nil
}

func (r *RestClient) ListAuditEvents(cmd AuditListCmd) (storage.ListAuditEventsResponse, error) {
	query := url.Values{}
	query.Set("offset", fmt.Sprintf("%d", cmd.Offset))
	query.Set("limit", fmt.Sprintf("%d", cmd.Limit))
	if cmd.Source != "" {
		query.Set("source", cmd.Source)
	}
	if cmd.Action != "" {
		query.Set("action", cmd.Action)
	}
	if cmd.Actor != "" {
		query.Set("actor", cmd.Actor)
	}
	if cmd.Resource != "" {
		query.Set("resource", cmd.Resource)
	}

	events := storage.ListAuditEventsResponse{}
	if err := r.execute(http.MethodGet, "/audit_event?"+query.Encode(), nil, &events); err != nil {
		return storage.ListAuditEventsResponse{}, err
	}
	return events, nil
}

func (r *RestClient) VerifyAuditChain() (audit.IntegrityResult, error) {
	result := audit.IntegrityResult{}
	if err := r.execute(http.MethodPost, "/audit_event/verify", nil, &result); err != nil {
		return audit.IntegrityResult{}, err
	}
	return result, nil
}

func (r *RestClient) CreateChallenge(didStr string) (model.AuthChallenge, error) {
	req := struct {
		DID string `json:"did"`
	}{DID: didStr}

	challenge := model.AuthChallenge{}
	if err := r.execute(http.MethodPost, "/auth/challenge", util.StructToJSONReader(req), &challenge); err != nil {
		return model.AuthChallenge{}, err
	}
	return challenge, nil
}

func (r *RestClient) execute(method, path string, body io.Reader, result any) error {
	endPoint := r.server + path
	req, err := http.NewRequest(method, endPoint, body)
	if err != nil {
		return err
	}
	req.Header.Set(api.REQUESTER_HEADER, r.requester)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	if status/100 != 2 {
		message, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("request failed with status %d, message: %s", status, string(message))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return err
	}
	return nil
}
