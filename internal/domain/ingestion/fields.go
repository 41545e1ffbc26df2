package ingestion

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Field identifies a canonical ledger field a spreadsheet column can map to.
type Field string

const (
	FieldMissionID       Field = "missionId"
	FieldMissionName     Field = "missionName"
	FieldAircraft        Field = "aircraft"
	FieldExpenseCategory Field = "expenseCategory"
	FieldExpenseType     Field = "expenseType"
	FieldSupplier        Field = "supplier"
	FieldDescription     Field = "description"
	FieldDueDate         Field = "dueDate"
	FieldPaymentDate     Field = "paymentDate"
	FieldAmountDue       Field = "amountDue"
	FieldAmountPaid      Field = "amountPaid"
	FieldInvoiceTotal    Field = "invoiceTotal"
	FieldCostCenter      Field = "costCenter"
	FieldFiscalDocType   Field = "fiscalDocType"
	FieldFiscalDocNumber Field = "fiscalDocNumber"
	FieldNotes           Field = "notes"
)

// fieldSynonyms lists the accepted header spellings per canonical field.
// Accented variants are encoded explicitly; matching itself only case-folds
// and trims, it never strips accents.
var fieldSynonyms = map[Field][]string{
	FieldMissionID: {
		"missao", "missão", "id missao", "id_missao", "missao id",
		"nº missao", "numero missao", "número missão",
	},
	FieldMissionName: {
		"nome missao", "nome missão", "nome da missão", "nome_missao", "trecho",
	},
	FieldAircraft: {
		"aeronave", "prefixo", "matricula", "matrícula",
	},
	FieldExpenseCategory: {
		"categoria", "categoria despesa", "categoria_despesa",
	},
	FieldExpenseType: {
		"tipo", "tipo despesa", "tipo_despesa",
	},
	FieldSupplier: {
		"fornecedor", "credor",
	},
	FieldDescription: {
		"descricao", "descrição", "historico", "histórico",
	},
	FieldDueDate: {
		"vencimento", "data vencimento", "data_vencimento", "data de vencimento",
	},
	FieldPaymentDate: {
		"pagamento", "data pagamento", "data_pagamento", "data de pagamento", "data pgto",
	},
	FieldAmountDue: {
		"valor devido", "valor_devido", "valor a pagar", "valor",
	},
	FieldAmountPaid: {
		"valor pago", "valor_pago", "pago",
	},
	FieldInvoiceTotal: {
		"total nota", "total da nota", "valor nota", "valor total nf",
	},
	FieldCostCenter: {
		"centro de custo", "centro custo", "centro_custo", "cc",
	},
	FieldFiscalDocType: {
		"tipo doc", "tipo documento", "tipo doc fiscal", "doc fiscal",
	},
	FieldFiscalDocNumber: {
		"numero doc", "número doc", "numero documento", "nf", "numero nf", "nº nf",
	},
	FieldNotes: {
		"obs", "observacao", "observação", "observacoes", "observações",
	},
}

// Mapping relates canonical fields to the source header that provides them.
// Fields without a matching header are simply absent.
type Mapping map[Field]string

// Header returns the source header resolved for the field.
func (m Mapping) Header(f Field) (string, bool) {
	h, ok := m[f]
	return h, ok
}

// Resolver maps arbitrary spreadsheet headers to canonical fields.
type Resolver struct {
	index map[string]Field
}

// NewResolver builds a resolver from the pt-BR synonym table.
func NewResolver() *Resolver {
	index := make(map[string]Field)
	for field, synonyms := range fieldSynonyms {
		for _, syn := range synonyms {
			index[foldHeader(syn)] = field
		}
	}
	return &Resolver{index: index}
}

// Resolve matches each canonical field to the first header whose folded text
// equals one of its synonyms. Absent fields raise no error; callers apply
// defaults downstream.
func (r *Resolver) Resolve(headers []string) Mapping {
	mapping := make(Mapping)
	for _, header := range headers {
		field, ok := r.index[foldHeader(header)]
		if !ok {
			continue
		}
		if _, taken := mapping[field]; taken {
			continue
		}
		mapping[field] = header
	}
	return mapping
}

// Suggestion pairs an unresolved header with the synonyms it most resembles.
type Suggestion struct {
	Header     string   `json:"header"`
	Candidates []string `json:"candidates"`
}

// Suggest fuzzy-ranks unresolved headers against the synonym table. This only
// feeds the analyze endpoint so users can fix their column names; canonical
// resolution never uses fuzzy matches.
func (r *Resolver) Suggest(headers []string) []Suggestion {
	resolved := r.Resolve(headers)
	taken := make(map[string]bool, len(resolved))
	for _, h := range resolved {
		taken[h] = true
	}

	dictionary := make([]string, 0, len(r.index))
	for syn := range r.index {
		dictionary = append(dictionary, syn)
	}
	sort.Strings(dictionary)

	var suggestions []Suggestion
	for _, header := range headers {
		if taken[header] || strings.TrimSpace(header) == "" {
			continue
		}
		ranks := fuzzy.RankFindNormalizedFold(foldHeader(header), dictionary)
		sort.Sort(ranks)

		candidates := make([]string, 0, 3)
		for _, rank := range ranks {
			candidates = append(candidates, rank.Target)
			if len(candidates) == 3 {
				break
			}
		}
		if len(candidates) > 0 {
			suggestions = append(suggestions, Suggestion{Header: header, Candidates: candidates})
		}
	}
	return suggestions
}

func foldHeader(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
