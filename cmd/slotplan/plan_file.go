package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	planModels "github.com/m04kA/SMC-TurfService/internal/service/planner/models"
)

var errEmptyPlanFile = errors.New("plan file is empty")

// readPlanFile читает форму плана из YAML; неизвестные ключи считаются ошибкой
func readPlanFile(path string) (*planModels.PlanForm, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return decodePlan(data)
}

func decodePlan(data []byte) (*planModels.PlanForm, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var form planModels.PlanForm
	if err := dec.Decode(&form); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyPlanFile
		}
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &form, nil
}

func encodePlan(w io.Writer, form *planModels.PlanForm) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(form); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return enc.Close()
}

// writePlanFile перезаписывает файл плана целиком
func writePlanFile(path string, form *planModels.PlanForm) error {
	var buf bytes.Buffer
	if err := encodePlan(&buf, form); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}
	return nil
}
