package protocols

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/schemagrid/internal/domain"
)

// Config carries construction options for protocols that take any.
type Config struct {
	// WSDLVersion selects "1.1" or "2.0"; empty defaults to "2.0".
	WSDLVersion string
}

// registryEntry binds a case-insensitive format key to a constructor. A nil
// build marks a format that is recognized but not yet implemented.
type registryEntry struct {
	key   string
	build func(cfg Config) domain.Protocol
}

// registry order is the stable order reported by GetSupportedProtocols.
var registry = []registryEntry{
	{"wsdl", func(cfg Config) domain.Protocol { return NewWSDLProtocol(cfg.WSDLVersion) }},
	{"soap", nil},
	{"jsonrpc", func(Config) domain.Protocol { return NewJSONRPCProtocol() }},
	{"xsd", func(Config) domain.Protocol { return NewXSDProtocol() }},
	{"sap", func(Config) domain.Protocol { return NewSAPProtocol() }},
}

// CreateProtocol resolves a format name, case-insensitively, to a protocol
// instance. It is the only operation in the engine that returns an error:
// for a recognized-but-unimplemented format, for an unknown format (the
// message preserves the caller's original spelling), and for empty input.
// Callers pattern-match on the message text, so it is part of the contract.
func CreateProtocol(protocolType string, cfg *Config) (domain.Protocol, error) {
	if protocolType == "" {
		return nil, errors.New("protocol type is required")
	}

	config := Config{}
	if cfg != nil {
		config = *cfg
	}

	key := strings.ToLower(protocolType)

	for _, entry := range registry {
		if entry.key != key {
			continue
		}

		if entry.build == nil {
			return nil, fmt.Errorf("%s protocol not yet implemented", strings.ToUpper(entry.key))
		}

		return entry.build(config), nil
	}

	return nil, fmt.Errorf("Unsupported protocol type: %s", protocolType)
}

// GetSupportedProtocols returns every registered format key, including the
// not-yet-implemented ones, in stable order.
func GetSupportedProtocols() []string {
	keys := make([]string, 0, len(registry))

	for _, entry := range registry {
		keys = append(keys, entry.key)
	}

	return keys
}

// IsProtocolSupported reports whether the format key is registered,
// case-insensitively. It never errors: empty or unknown input is false.
func IsProtocolSupported(protocolType string) bool {
	if protocolType == "" {
		return false
	}

	key := strings.ToLower(protocolType)

	for _, entry := range registry {
		if entry.key == key {
			return true
		}
	}

	return false
}

// IsImplemented reports whether the registered format key has a working
// protocol behind it ("soap" is registered but stubbed).
func IsImplemented(protocolType string) bool {
	key := strings.ToLower(protocolType)

	for _, entry := range registry {
		if entry.key == key {
			return entry.build != nil
		}
	}

	return false
}
