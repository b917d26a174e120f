// Package e2e_test holds end-to-end tests for the solve pipeline.
package e2e_test
