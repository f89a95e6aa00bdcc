// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the local storage selected by the configuration, wires the
// services over it, restores the saved session and hands them to the
// terminal UI or to a single CLI command.
package client
