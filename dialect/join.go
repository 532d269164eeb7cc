package dialect

// ----------------------------------------------------------------------------
// JOIN Types
// ----------------------------------------------------------------------------

// JoinType, JOIN türünü belirtir. Sabitler dışındaki değerler olduğu gibi yazılır.
type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinFull  JoinType = "FULL"
	JoinCross JoinType = "CROSS"
)

// IsKnown, türün yukarıdaki sabitlerden biri olup olmadığını döndürür.
func (t JoinType) IsKnown() bool {
	switch t {
	case JoinInner, JoinLeft, JoinRight, JoinFull, JoinCross:
		return true
	default:
		return false
	}
}

// JoinClause, JOIN ifadesini temsil eder. Condition ham SQL'dir.
type JoinClause struct {
	Type      JoinType
	Table     string
	Alias     string
	Condition string
}

// Key, JoinList içindeki anahtarı döndürür: alias, yoksa tablo adı.
func (j JoinClause) Key() string {
	if j.Alias != "" {
		return j.Alias
	}
	return j.Table
}

// ----------------------------------------------------------------------------
// JoinList (sıralı ilişkilendirme)
// ----------------------------------------------------------------------------

// JoinList, join'leri ekleme sırasıyla tutar ve aynı anahtarla gelen join'i
// yerinde değiştirir. Sıfır değeri kullanıma hazırdır.
type JoinList struct {
	entries []JoinClause
	index   map[string]int
}

// Put, join'i ekler. Anahtar daha önce görüldüyse eski kayıt ilk konumunda
// yenisiyle değiştirilir.
func (l *JoinList) Put(j JoinClause) {
	key := j.Key()
	if i, ok := l.index[key]; ok {
		l.entries[i] = j
		return
	}
	if l.index == nil {
		l.index = make(map[string]int)
	}
	l.index[key] = len(l.entries)
	l.entries = append(l.entries, j)
}

// Items, join'lerin kopyasını ekleme sırasıyla döndürür.
func (l *JoinList) Items() []JoinClause {
	out := make([]JoinClause, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clone, listenin bağımsız bir kopyasını döndürür.
func (l *JoinList) Clone() JoinList {
	clone := JoinList{entries: l.Items()}
	if l.index != nil {
		clone.index = make(map[string]int, len(l.index))
		for k, v := range l.index {
			clone.index[k] = v
		}
	}
	return clone
}
