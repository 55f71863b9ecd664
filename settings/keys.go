package settings

import (
	"encoding/hex"
	"errors"
	"path/filepath"

	"github.com/magiconair/properties"
)

var (
	keysInstance *overrideKeys
)

type overrideKeys struct {
	keys map[string]string
}

func (k *overrideKeys) GetKey(keyName string) string {
	return k.keys[keyName]
}

// GetEkpfs returns a caller-supplied ekpfs key as raw bytes, or nil when no
// override is configured. Entries are keyed by content id, with "ekpfs" as
// the catch-all.
func (k *overrideKeys) GetEkpfs(contentID string) []byte {
	v := k.keys[contentID]
	if v == "" {
		v = k.keys["ekpfs"]
	}
	if v == "" {
		return nil
	}
	raw, err := hex.DecodeString(v)
	if err != nil || len(raw) != 32 {
		return nil
	}
	return raw
}

func OverrideKeys() (*overrideKeys, error) {
	return keysInstance, nil
}

// InitOverrideKeys loads the optional override.keys properties file. Most
// packages never need one, the embedded keysets cover the fake-signed case.
func InitOverrideKeys(baseFolder string) (*overrideKeys, error) {
	name := ReadSettings(baseFolder).OverrideKeys
	if name == "" {
		name = "override.keys"
	}
	p, err := properties.LoadFile(filepath.Join(baseFolder, name), properties.UTF8)
	if err != nil {
		return nil, errors.New("couldn't find " + name)
	}
	keysInstance = &overrideKeys{keys: map[string]string{}}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		keysInstance.keys[key] = value
	}

	return keysInstance, nil
}
