//go:build inkdebug

package ink

const debugAssertions = true
