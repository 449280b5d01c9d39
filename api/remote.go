/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"syscall"
	"time"

	"github.com/dburkart/js2py/pkg/proto"
	"github.com/pkg/errors"
)

// A RemoteClient sends conversions to a js2py server.
type RemoteClient struct {
	target  proto.ConnectionString
	http    *http.Client
	retries int
	backoff time.Duration
}

func NewRemoteClient(target proto.ConnectionString) *RemoteClient {
	return &RemoteClient{
		target:  target,
		http:    &http.Client{Timeout: 30 * time.Second},
		retries: 3,
		backoff: time.Second,
	}
}

func (client *RemoteClient) Close() error {
	client.http.CloseIdleConnections()
	return nil
}

// Convert sends req to the server. Conversion failures reported by the
// server are returned as *proto.ErrResponse.
func (client *RemoteClient) Convert(req proto.ConvertRequest) (proto.ConvertResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return proto.ConvertResponse{}, errors.Wrap(err, "unable to marshal convert request")
	}

	resp, err := client.doWithBackoff(http.MethodPost, proto.RouteConvert, body)
	if err != nil {
		return proto.ConvertResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return proto.ConvertResponse{}, decodeErrResponse(resp)
	}

	ret := proto.ConvertResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&ret); err != nil {
		return proto.ConvertResponse{}, errors.Wrap(err, "unable to unmarshal convert response")
	}
	return ret, nil
}

func (client *RemoteClient) Kinds() ([]string, error) {
	resp, err := client.doWithBackoff(http.MethodGet, proto.RouteKinds, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeErrResponse(resp)
	}

	ret := proto.KindsResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&ret); err != nil {
		return nil, errors.Wrap(err, "unable to unmarshal kinds response")
	}
	return ret.Kinds, nil
}

// doWithBackoff retries requests the server never saw (connection refused or
// reset) with exponential backoff.
func (client *RemoteClient) doWithBackoff(method, route string, body []byte) (*http.Response, error) {
	var resp *http.Response
	var err error

	for i := 0; i <= client.retries; i++ {
		if i > 0 {
			delay := time.Duration(math.Exp2(float64(i - 1)))
			time.Sleep(delay * client.backoff)
		}

		var req *http.Request
		req, err = http.NewRequest(method, client.target.URL()+route, bytes.NewReader(body))
		if err != nil {
			return nil, errors.Wrap(err, "unable to build request")
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err = client.http.Do(req)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, syscall.ECONNREFUSED) && !errors.Is(err, syscall.ECONNRESET) {
			break
		}
	}

	return nil, errors.Wrapf(err, "unable to reach %s", client.target.Address)
}

func decodeErrResponse(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "unable to read error response")
	}

	e := &proto.ErrResponse{}
	if err := json.Unmarshal(data, e); err != nil || e.Kind == "" {
		return errors.Errorf("server returned %s", resp.Status)
	}
	return e
}
