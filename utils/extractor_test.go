package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRecords(t *testing.T) {
	lines := []string{
		"JOAO SILVA 111111 OPERADOR",
		"1.234,56",
		"x",
		"MARIA SOUZA 222222 ANALISTA",
		"2.000,00",
		"y",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 2)
	assert.Equal(t, "JOAO SILVA", records[0].Name)
	assert.Equal(t, "111111", records[0].Code)
	assert.Equal(t, "OPERADOR", records[0].Role)
	assert.Equal(t, "1.234,56", records[0].Value)
	assert.Equal(t, "MARIA SOUZA", records[1].Name)
	assert.Equal(t, "222222", records[1].Code)
	assert.Equal(t, "ANALISTA", records[1].Role)
	assert.Equal(t, "2.000,00", records[1].Value)
}

func TestExtractRecordsAccentedName(t *testing.T) {
	lines := []string{
		"JOÃO DA CONCEIÇÃO 333333 AUX ENFERMAGEM",
		"PRODUTIVIDADE 12,34 56,78 1.890,12",
		"TOTAL 1.890,12",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 1)
	assert.Equal(t, "JOÃO DA CONCEIÇÃO", records[0].Name)
	assert.Equal(t, "333333", records[0].Code)
	assert.Equal(t, "AUX ENFERMAGEM", records[0].Role)
	assert.Equal(t, "1.890,12", records[0].Value)
}

func TestExtractRecordsSkipsNoiseLineByLine(t *testing.T) {
	lines := []string{
		"cabecalho que sobrou",
		"JOAO SILVA 111111 OPERADOR",
		"1.234,56",
		"x",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 1)
	assert.Equal(t, "JOAO SILVA", records[0].Name)
}

func TestExtractRecordsDropsBlockWithoutValue(t *testing.T) {
	lines := []string{
		"JOAO SILVA 111111 OPERADOR",
		"sem valor nesta linha",
		"x",
		"MARIA SOUZA 222222 ANALISTA",
		"2.000,00",
		"y",
	}

	records := ExtractRecords(lines)

	// The first block is consumed whole even though it yields nothing.
	assert.Len(t, records, 1)
	assert.Equal(t, "MARIA SOUZA", records[0].Name)
}

func TestExtractRecordsFixedStrideConsumesThirdLine(t *testing.T) {
	// The identity-like line sitting in the total-line slot must be
	// swallowed by the block, not parsed as a new record.
	lines := []string{
		"JOAO SILVA 111111 OPERADOR",
		"1,00",
		"MARIA SOUZA 222222 ANALISTA",
		"2,00",
		"x",
		"y",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 1)
	assert.Equal(t, "JOAO SILVA", records[0].Name)
}

func TestExtractRecordsStopsBelowThreeLines(t *testing.T) {
	lines := []string{
		"JOAO SILVA 111111 OPERADOR",
		"1.234,56",
	}

	assert.Empty(t, ExtractRecords(lines))
}

func TestExtractRecordsValueIsLastNumberOnLine(t *testing.T) {
	lines := []string{
		"JOAO SILVA 111111 OPERADOR",
		"PRODUTIVIDADE 100,00 250,50 3.456,78",
		"x",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 1)
	assert.Equal(t, "3.456,78", records[0].Value)
}

func TestExtractRecordsRefiltersDirtyInput(t *testing.T) {
	// Extraction may receive raw text when cleaning was disabled; the
	// defensive pre-filter must still drop separators and headers.
	lines := []string{
		"--- Page 1 ---",
		"Relação Anual de Produtividade",
		"____________________",
		"  JOAO SILVA 111111 OPERADOR  ",
		"1.234,56",
		"x",
	}

	records := ExtractRecords(lines)

	assert.Len(t, records, 1)
	assert.Equal(t, "JOAO SILVA", records[0].Name)
	assert.Equal(t, "1.234,56", records[0].Value)
}
