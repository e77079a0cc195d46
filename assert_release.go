//go:build !inkdebug

package ink

const debugAssertions = false
