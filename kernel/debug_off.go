// SPDX-License-Identifier: MIT

//go:build !robustgeo_debug

package kernel

const debugChecks = false
