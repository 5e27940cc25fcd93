// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Health reports the last observed reachability of the two database pools.
type Health struct {
	WriteOK bool `json:"write_ok"`
	ReadOK  bool `json:"read_ok"`
}

// OK reports whether both pools answered their last probe.
func (h Health) OK() bool {
	return h.WriteOK && h.ReadOK
}
