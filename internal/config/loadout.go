package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/robot-forge/internal/entities/robot"
	"github.com/KirkDiggler/robot-forge/internal/errors"
)

// LoadLoadouts reads every loadout in a YAML file. A file may hold several
// documents separated by "---".
func LoadLoadouts(path string) ([]robot.Loadout, error) {
	data, err := os.ReadFile(path) // #nosec G304 path comes from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("loadout file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read loadout file %s", path)
	}

	loadouts, err := ParseLoadouts(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid loadout file %s", path)
	}
	return loadouts, nil
}

// ParseLoadouts decodes one or more YAML loadout documents
func ParseLoadouts(data []byte) ([]robot.Loadout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var out []robot.Loadout
	for i := 0; ; i++ {
		var l robot.Loadout
		err := dec.Decode(&l)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode loadout")
		}
		if l.RobotID == "" {
			return nil, errors.InvalidArgumentf("loadout %d has no robot_id", i)
		}
		out = append(out, l)
	}

	if len(out) == 0 {
		return nil, errors.InvalidArgument("no loadouts found")
	}
	return out, nil
}

// WriteParts encodes part records as a YAML list
func WriteParts(w io.Writer, recs []robot.PartRecord) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return errors.Wrap(err, "failed to encode parts")
	}
	return enc.Close()
}
