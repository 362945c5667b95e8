// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the confctl application runtime.
//
// It loads the base document, overlays the environment and dispatches the
// display, get, overrides and serve commands.
package app
