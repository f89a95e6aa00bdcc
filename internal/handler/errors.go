// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoServices is returned by NewHandlers when there is no service layer to
// route requests to.
var errNoServices = errors.New("handlers need a service layer")
