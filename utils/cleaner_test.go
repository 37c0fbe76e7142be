package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextRemovesBoilerplate(t *testing.T) {
	raw := strings.Join([]string{
		"--- Page 1 ---",
		"Relação Anual de Produtividade",
		"COOPERATIVA DE TRABALHO",
		"Rubrica Descrição",
		"TRABALHADOR",
		"Página 1 de 3",
		"_______________________________",
		"",
		"   ",
		"JAN FEV MAR ABR MAI JUN JUL AGO SET OUT NOV DEZ TOTAL",
		"----------------------",
		" - - - ",
		"JOAO SILVA 111111 OPERADOR",
		"1.234,56",
	}, "\n")

	lines := CleanText(raw)

	assert.Equal(t, []string{"JOAO SILVA 111111 OPERADOR", "1.234,56"}, lines)
}

func TestCleanTextSkipsTotalizationSection(t *testing.T) {
	raw := strings.Join([]string{
		"TOTALIZACAO X",
		"239001 foo",
		"123456 Jane Doe ANALISTA",
		"100,50",
		"extra",
	}, "\n")

	lines := CleanText(raw)

	assert.Equal(t, []string{"123456 Jane Doe ANALISTA", "100,50", "extra"}, lines)
}

func TestCleanTextSkipSectionDropsOrdinaryLines(t *testing.T) {
	raw := strings.Join([]string{
		"JOAO SILVA 111111 OPERADOR",
		"TOTALIZAÇÃO GERAL",
		"PRODUTIVIDADE 10,00 20,00 30,00",
		"algum texto solto",
		"MARIA SOUZA 222222 ANALISTA",
		"2.000,00",
	}, "\n")

	lines := CleanText(raw)

	assert.Equal(t, []string{
		"JOAO SILVA 111111 OPERADOR",
		"MARIA SOUZA 222222 ANALISTA",
		"2.000,00",
	}, lines)
}

func TestCleanTextIdempotent(t *testing.T) {
	raw := strings.Join([]string{
		"--- Page 1 ---",
		"Relação Anual de Produtividade",
		"JOAO SILVA 111111 OPERADOR",
		"PRODUTIVIDADE 1.234,56",
		"TOTAL 1.234,56",
		"TOTALIZAÇÃO",
		"239100 RUBRICA 99,99",
		"MARIA SOUZA 222222 ANALISTA",
		"2.000,00",
	}, "\n")

	once := CleanText(raw)
	twice := CleanText(strings.Join(once, "\n"))

	assert.Equal(t, once, twice)
}

func TestCleanTextEmptyInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
}
