// Package version reports the build version of the xduce binary.
package version
