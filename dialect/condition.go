package dialect

// ----------------------------------------------------------------------------
// WHERE Condition Types
// ----------------------------------------------------------------------------

// Condition, WHERE cümlesindeki tek bir koşuldur. Üç varyantı vardır:
// RawCondition, EqualsCondition ve OpCondition. Arayüz mühürlüdür (sealed);
// paket dışından yeni varyant eklenemez.
type Condition interface {
	// Parameterized, koşulun bir bağlama değeri üretip üretmediğini döndürür.
	Parameterized() bool

	condition()
}

// RawCondition, olduğu gibi yazılan ham bir boolean SQL ifadesidir.
// Parametre üretmez ve içeriği doğrulanmaz.
type RawCondition struct {
	Expr string
}

// EqualsCondition, "<column> = ?" koşuludur.
type EqualsCondition struct {
	Column string
	Value  any
}

// OpCondition, "<column> <operator> ?" koşuludur. Operatör olduğu gibi yazılır.
type OpCondition struct {
	Column   string
	Operator string
	Value    any
}

func (RawCondition) Parameterized() bool    { return false }
func (EqualsCondition) Parameterized() bool { return true }
func (OpCondition) Parameterized() bool     { return true }

func (RawCondition) condition()    {}
func (EqualsCondition) condition() {}
func (OpCondition) condition()     {}
