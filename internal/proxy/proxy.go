package proxy

import (
	"bytes"
	"encoding/json"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
)

var ErrMissingEntry = errors.New("missing abi entry")

// File is a proxy ABI file as written by the IMA deployment scripts:
// a flat object of "<contract>_abi" and "<contract>_address" entries.
type File struct {
	Path    string
	entries map[string]json.RawMessage
}

type Contract struct {
	Name    string
	Address common.Address
	ABI     abi.ABI
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrap(err, "read proxy abi file")
	}
	entries := make(map[string]json.RawMessage)
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parse proxy abi file %s", path)
	}
	return &File{Path: path, entries: entries}, nil
}

// CheckKeys reports every absent key in a single error.
func (f *File) CheckKeys(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := f.entries[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrMissingEntry, "%s: %s", f.Path, strings.Join(missing, ", "))
	}
	return nil
}

func (f *File) Contract(name string) (*Contract, error) {
	if err := f.CheckKeys(name+abiSuffix, name+addressSuffix); err != nil {
		return nil, err
	}

	parsed, err := abi.JSON(bytes.NewReader(f.entries[name+abiSuffix]))
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s abi", name)
	}

	var addr string
	if err = json.Unmarshal(f.entries[name+addressSuffix], &addr); err != nil {
		return nil, errors.Wrapf(err, "parse %s address", name)
	}
	if !common.IsHexAddress(addr) {
		return nil, errors.Errorf("%s address %q is not a hex address", name, addr)
	}

	return &Contract{Name: name, Address: common.HexToAddress(addr), ABI: parsed}, nil
}

func (c *Contract) Pack(method string, params ...interface{}) ([]byte, error) {
	input, err := c.ABI.Pack(method, params...)
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s.%s", c.Name, method)
	}
	return input, nil
}
