package sharepoint

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sicedia/sharepoint-2019-connect-api/internal/testutil"
	"github.com/sicedia/sharepoint-2019-connect-api/pkg/client"
)

const requestsItemsPath = "/_api/web/lists/GetByTitle('Requests')/items"

func TestList_GetAllItems_FollowsPagination(t *testing.T) {
	mock := testutil.NewMockSharePoint()
	defer mock.Close()

	// Three pages, each advertising its continuation under a different
	// metadata-mode field name.
	mock.SetHandler(requestsItemsPath, testutil.JSONHandler(http.StatusOK, testutil.ItemsPage(
		[]string{`{"Id":1,"Title":"A","_ComplianceFlags":"x"}`, `{"Id":2,"Title":"B"}`},
		"odata.nextLink", mock.URL()+"/page2",
	)))
	mock.SetHandler("/page2", testutil.JSONHandler(http.StatusOK, testutil.ItemsPage(
		[]string{`{"Id":3,"Title":"C"}`},
		"__next", mock.URL()+"/page3",
	)))
	mock.SetHandler("/page3", testutil.JSONHandler(http.StatusOK, testutil.ItemsPage(
		[]string{`{"Id":4,"Title":"D"}`},
		"", "",
	)))

	l := newTestList(t, mock, "Requests")
	records, err := l.GetAllItems(context.Background())
	if err != nil {
		t.Fatalf("GetAllItems() unexpected error: %v", err)
	}

	if mock.RequestCount != 3 {
		t.Errorf("RequestCount = %d, want 3", mock.RequestCount)
	}
	if len(records) != 4 {
		t.Fatalf("len(records) = %d, want 4", len(records))
	}
	for i, want := range []string{"A", "B", "C", "D"} {
		if got := records[i]["Title"]; got != want {
			t.Errorf("records[%d].Title = %v, want %q (server order must be preserved)", i, got, want)
		}
	}
	if _, ok := records[0]["_ComplianceFlags"]; ok {
		t.Error("Internal metadata field survived cleaning")
	}
}

func TestList_GetItemsWithLimit_SinglePage(t *testing.T) {
	mock := testutil.NewMockSharePoint()
	defer mock.Close()

	// The server offers a next page; a limited fetch must ignore it.
	mock.SetHandler(requestsItemsPath, testutil.JSONHandler(http.StatusOK, testutil.ItemsPage(
		[]string{`{"Id":1,"Title":"A"}`, `{"Id":2,"Title":"B"}`},
		"@odata.nextLink", mock.URL()+"/page2",
	)))

	l := newTestList(t, mock, "Requests")
	records, err := l.GetItemsWithLimit(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetItemsWithLimit() unexpected error: %v", err)
	}

	if mock.RequestCount != 1 {
		t.Errorf("RequestCount = %d, want exactly 1", mock.RequestCount)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
}

func TestList_GetAllItems_HTTPErrorAbortsFetch(t *testing.T) {
	mock := testutil.NewMockSharePoint()
	defer mock.Close()

	mock.SetHandler(requestsItemsPath, testutil.JSONHandler(http.StatusInternalServerError, `{"error":"boom"}`))

	l := newTestList(t, mock, "Requests")
	records, err := l.GetAllItems(context.Background())

	var reqErr *client.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Expected *client.RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", reqErr.StatusCode)
	}
	if records != nil {
		t.Error("Accumulated records must be discarded on failure")
	}
}

func TestList_GetAllItems_ErrorOnLaterPageDiscardsAccumulator(t *testing.T) {
	mock := testutil.NewMockSharePoint()
	defer mock.Close()

	mock.SetHandler(requestsItemsPath, testutil.JSONHandler(http.StatusOK, testutil.ItemsPage(
		[]string{`{"Id":1,"Title":"A"}`},
		"odata.nextLink", mock.URL()+"/page2",
	)))
	mock.SetHandler("/page2", testutil.JSONHandler(http.StatusBadGateway, `{}`))

	l := newTestList(t, mock, "Requests")
	records, err := l.GetAllItems(context.Background())

	var reqErr *client.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Expected *client.RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusBadGateway {
		t.Errorf("StatusCode = %d, want 502", reqErr.StatusCode)
	}
	if records != nil {
		t.Error("Partial data must not be returned as success")
	}
	if mock.RequestCount != 2 {
		t.Errorf("RequestCount = %d, want 2", mock.RequestCount)
	}
}

func TestList_GetAllItems_EmptyAndAbsentValue(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty value array", body: `{"value":[]}`},
		{name: "absent value key", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockSharePoint()
			defer mock.Close()

			mock.SetHandler(requestsItemsPath, testutil.JSONHandler(http.StatusOK, tt.body))

			l := newTestList(t, mock, "Requests")
			records, err := l.GetAllItems(context.Background())
			if err != nil {
				t.Fatalf("GetAllItems() unexpected error: %v", err)
			}
			if len(records) != 0 {
				t.Errorf("len(records) = %d, want 0", len(records))
			}
		})
	}
}
