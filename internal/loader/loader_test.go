package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricearaul/apriori-engine/internal/models"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBasketNoHeaderUsesEveryField(t *testing.T) {
	path := writeTemp(t, "basket.csv", "bread,milk\nbread,diaper,beer\n,milk,\n")

	transactions, err := LoadBasket(path, ",", "", nil, nil)
	require.NoError(t, err)

	require.Len(t, transactions, 3)
	assert.Equal(t, models.RawTransaction{"bread", "milk"}, transactions[0])
	assert.Equal(t, models.RawTransaction{"bread", "diaper", "beer"}, transactions[1])
	assert.Equal(t, models.RawTransaction{"milk"}, transactions[2])
}

func TestLoadBasketWithColumnsReadsHeaderAndStripsSentinel(t *testing.T) {
	path := writeTemp(t, "basket_cols.csv", "a,b,c\n1,-,1\n-,1,-\n")

	transactions, err := LoadBasket(path, ",", "-", []string{"a", "b", "c"}, nil)
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, models.RawTransaction{"1", "1"}, transactions[0])
	assert.Equal(t, models.RawTransaction{"1"}, transactions[1])
}

func TestLoadBasketDropsEmptyTransactions(t *testing.T) {
	path := writeTemp(t, "basket_empty.csv", ",,\nbread,,\n")

	transactions, err := LoadBasket(path, ",", "", nil, nil)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, models.RawTransaction{"bread"}, transactions[0])
}

func TestLoadDetailGroupsByGroupColumnAndDropsSingletons(t *testing.T) {
	path := writeTemp(t, "detail.csv", "order,item\n1,bread\n1,milk\n2,bread\n3,milk\n3,bread\n3,milk\n")

	transactions, err := LoadDetail(path, ",", "order", "item")
	require.NoError(t, err)

	// order 2 has only one distinct item and is dropped.
	require.Len(t, transactions, 2)
	assert.Equal(t, models.RawTransaction{"bread", "milk"}, transactions[0])
	assert.Equal(t, models.RawTransaction{"bread", "milk"}, transactions[1])
}

func TestLoadDetailMissingColumnsErrors(t *testing.T) {
	path := writeTemp(t, "detail_bad.csv", "x,y\n1,bread\n")

	_, err := LoadDetail(path, ",", "order", "item")
	assert.Error(t, err)
}

func TestLoadSparseUsesColumnNameNotCellValue(t *testing.T) {
	path := writeTemp(t, "sparse.csv", "a,b,c\nbread,-,milk\n-,-,milk\n")

	transactions, err := LoadSparse(path, ",", "-", []string{"a", "b", "c"}, nil)
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, models.RawTransaction{"a", "c"}, transactions[0])
	assert.Equal(t, models.RawTransaction{"c"}, transactions[1])
}

func TestLoadNominalSynthesizesColumnEqualsValue(t *testing.T) {
	path := writeTemp(t, "nominal.csv", "color,size\nred,small\nblue,large\n")

	transactions, err := LoadNominal(path, ",", []string{"color", "size"}, nil)
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, models.RawTransaction{"color=red", "size=small"}, transactions[0])
	assert.Equal(t, models.RawTransaction{"color=blue", "size=large"}, transactions[1])
}

func TestLoadNominalPositionalFallbackWithoutColumns(t *testing.T) {
	path := writeTemp(t, "nominal_pos.csv", "red,small\n")

	transactions, err := LoadNominal(path, ",", nil, nil)
	require.NoError(t, err)

	require.Len(t, transactions, 1)
	assert.Equal(t, models.RawTransaction{"col0=red", "col1=small"}, transactions[0])
}

func TestClampColumnsReportsOverflow(t *testing.T) {
	columns := make([]string, MaxColumns+5)
	for i := range columns {
		columns[i] = "c"
	}

	var reportedRequested, reportedKept int
	clamped := clampColumns(columns, func(requested, kept int) {
		reportedRequested, reportedKept = requested, kept
	})

	assert.Len(t, clamped, MaxColumns)
	assert.Equal(t, MaxColumns+5, reportedRequested)
	assert.Equal(t, MaxColumns, reportedKept)
}

func TestLoadDispatchesOnDatasetType(t *testing.T) {
	path := writeTemp(t, "basket_dispatch.csv", "bread,milk\n")

	transactions, err := Load(path, 1, ",", "", "", "", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RawTransaction{"bread", "milk"}, transactions[0])

	_, err = Load(path, 99, ",", "", "", "", nil, nil)
	assert.Error(t, err)
}
