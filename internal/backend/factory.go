// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"restaurantai/cli/internal/api"
)

// New returns the HTTP implementation of API over c.
func New(c *api.Client) API {
	return &HTTP{c: c}
}

// HTTP implements API with the gateway client.
type HTTP struct {
	c *api.Client
}

var _ API = (*HTTP)(nil)
