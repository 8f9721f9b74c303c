package language

import (
	"goldprice/internal/domain"
	"goldprice/internal/reference"
)

type MessageKey string

const (
	MsgTitle         MessageKey = "title"
	MsgCurrentPrice  MessageKey = "current_price"
	MsgChange        MessageKey = "change"
	MsgCurrency      MessageKey = "currency"
	MsgPurity        MessageKey = "purity"
	MsgUnit          MessageKey = "unit"
	MsgHistory       MessageKey = "history"
	MsgConverter     MessageKey = "converter"
	MsgCalculator    MessageKey = "calculator"
	MsgAmount        MessageKey = "amount"
	MsgWeight        MessageKey = "weight"
	MsgExportCSV     MessageKey = "export_csv"
	MsgLastUpdated   MessageKey = "last_updated"
	MsgInvalidAmount MessageKey = "invalid_amount"
	MsgSimulatedData MessageKey = "simulated_data"
)

var keys = []MessageKey{
	MsgTitle, MsgCurrentPrice, MsgChange, MsgCurrency, MsgPurity, MsgUnit,
	MsgHistory, MsgConverter, MsgCalculator, MsgAmount, MsgWeight,
	MsgExportCSV, MsgLastUpdated, MsgInvalidAmount, MsgSimulatedData,
}

var tables = map[domain.Language]map[MessageKey]string{
	domain.English: {
		MsgTitle:         "Gold Price Today",
		MsgCurrentPrice:  "Current price",
		MsgChange:        "Change",
		MsgCurrency:      "Currency",
		MsgPurity:        "Purity",
		MsgUnit:          "Unit",
		MsgHistory:       "Price history",
		MsgConverter:     "Currency converter",
		MsgCalculator:    "Gold calculator",
		MsgAmount:        "Amount",
		MsgWeight:        "Weight",
		MsgExportCSV:     "Export CSV",
		MsgLastUpdated:   "Last updated",
		MsgInvalidAmount: "Please enter a valid number",
		MsgSimulatedData: "Prices are simulated and for reference only",
	},
	domain.French: {
		MsgTitle:         "Prix de l'or aujourd'hui",
		MsgCurrentPrice:  "Prix actuel",
		MsgChange:        "Variation",
		MsgCurrency:      "Devise",
		MsgPurity:        "Pureté",
		MsgUnit:          "Unité",
		MsgHistory:       "Historique des prix",
		MsgConverter:     "Convertisseur de devises",
		MsgCalculator:    "Calculateur d'or",
		MsgAmount:        "Montant",
		MsgWeight:        "Poids",
		MsgExportCSV:     "Exporter en CSV",
		MsgLastUpdated:   "Dernière mise à jour",
		MsgInvalidAmount: "Veuillez saisir un nombre valide",
		MsgSimulatedData: "Les prix sont simulés et donnés à titre indicatif",
	},
	domain.Arabic: {
		MsgTitle:         "سعر الذهب اليوم",
		MsgCurrentPrice:  "السعر الحالي",
		MsgChange:        "التغير",
		MsgCurrency:      "العملة",
		MsgPurity:        "العيار",
		MsgUnit:          "الوحدة",
		MsgHistory:       "تاريخ الأسعار",
		MsgConverter:     "محول العملات",
		MsgCalculator:    "حاسبة الذهب",
		MsgAmount:        "المبلغ",
		MsgWeight:        "الوزن",
		MsgExportCSV:     "تصدير CSV",
		MsgLastUpdated:   "آخر تحديث",
		MsgInvalidAmount: "يرجى إدخال رقم صحيح",
		MsgSimulatedData: "الأسعار محاكاة وللاسترشاد فقط",
	},
}

// Translate falls back from lang to English, then to the key itself.
func Translate(lang domain.Language, key MessageKey) string {
	return reference.Lookup(tables[lang], key, tables[domain.DefaultLanguage], string(key))
}

// Messages resolves every known key for lang.
func Messages(lang domain.Language) map[MessageKey]string {
	out := make(map[MessageKey]string, len(keys))
	for _, k := range keys {
		out[k] = Translate(lang, k)
	}
	return out
}
