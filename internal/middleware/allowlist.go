// SPDX-License-Identifier: MIT
package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultAllowlist keeps the preview server reachable from loopback only
var DefaultAllowlist = []string{"127.0.0.0/8", "::1/128"}

// ParseAllowlist splits a comma separated CIDR list, dropping blanks
func ParseAllowlist(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// AllowlistMiddleware rejects clients outside the given CIDR ranges with 403.
// Invalid entries are ignored; an empty list allows everyone.
func AllowlistMiddleware(allowed []string) gin.HandlerFunc {
	ranges := make([]*net.IPNet, 0, len(allowed))
	for _, cidr := range allowed {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err == nil {
			ranges = append(ranges, ipNet)
		}
	}

	return func(c *gin.Context) {
		if len(ranges) == 0 {
			c.Next()
			return
		}

		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range ranges {
			if ipNet.Contains(clientIP) {
				c.Next()
				return
			}
		}

		c.AbortWithStatus(403)
	}
}

// extractIP returns the peer address of the request. Forwarding headers are
// not trusted since the preview server is never deployed behind a proxy.
func extractIP(c *gin.Context) net.IP {
	// Use SplitHostPort to properly handle IPv6 addresses with brackets
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}

	return net.ParseIP(host)
}
