// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func healthyProbe(m sqlmock.Sqlmock) {
	m.ExpectQuery("SELECT 1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
}

func TestPools_HealthCheck_BothHealthy(t *testing.T) {
	pools, writeMock, readMock := newTestPools(t)
	healthyProbe(writeMock)
	healthyProbe(readMock)

	h := pools.HealthCheck(context.Background())

	if !h.WriteOK || !h.ReadOK {
		t.Fatalf("expected both pools healthy, got %+v", h)
	}
	if !h.OK() {
		t.Error("expected aggregate OK")
	}
	if got := pools.Health(); got != h {
		t.Errorf("Health() = %+v, want recorded state %+v", got, h)
	}
	expectationsMet(t, writeMock, readMock)
}

func TestPools_HealthCheck_ReadDown(t *testing.T) {
	pools, writeMock, readMock := newTestPools(t)
	healthyProbe(writeMock)
	readMock.ExpectQuery("SELECT 1").
		WillReturnError(errors.New("replica is gone"))

	h := pools.HealthCheck(context.Background())

	if !h.WriteOK {
		t.Error("expected write pool healthy")
	}
	if h.ReadOK {
		t.Error("expected read pool unhealthy")
	}
	if h.OK() {
		t.Error("aggregate OK must require both pools")
	}

	// the failed probe must surface on the error channel, naming its pool
	select {
	case err := <-pools.Errors():
		if !strings.Contains(err.Error(), "read pool probe") {
			t.Errorf("expected read pool probe error, got %v", err)
		}
	default:
		t.Error("expected a reported pool error")
	}
}

func TestPools_HealthCheck_RecordsLatestState(t *testing.T) {
	pools, writeMock, readMock := newTestPools(t)

	writeMock.ExpectQuery("SELECT 1").WillReturnError(errors.New("primary down"))
	readMock.ExpectQuery("SELECT 1").WillReturnError(errors.New("replica down"))
	pools.HealthCheck(context.Background())

	healthyProbe(writeMock)
	healthyProbe(readMock)
	pools.HealthCheck(context.Background())

	if got := pools.Health(); !got.WriteOK || !got.ReadOK {
		t.Errorf("expected recovery to be recorded, got %+v", got)
	}
}

func TestPools_report_DropsWhenSaturated(t *testing.T) {
	pools, _, _ := newTestPools(t)

	for i := 0; i < poolErrorBuffer+5; i++ {
		pools.report(fmt.Errorf("probe failure %d", i))
	}

	// report must never block; overflow is dropped
	if got := len(pools.errs); got != poolErrorBuffer {
		t.Errorf("expected %d buffered errors, got %d", poolErrorBuffer, got)
	}
}
