package connector

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iudanet/formsync/pkg/api"
)

// Префиксы, которыми некоторые сервисы защищают JSON от исполнения как скрипта
var xssiPrefixes = [][]byte{
	[]byte(")]}'"),
	[]byte("while(1);"),
	[]byte("for(;;);"),
}

// decodeEnvelope разбирает конверт ответа. Если тело не является JSON целиком
// (HTML-обертка, XSSI префикс, мусор вокруг), берется самый внешний {...}.
func decodeEnvelope(raw []byte) (*api.Response, error) {
	var env api.Response
	if err := json.Unmarshal(raw, &env); err == nil {
		return &env, nil
	}

	body := bytes.TrimSpace(raw)
	for _, p := range xssiPrefixes {
		body = bytes.TrimSpace(bytes.TrimPrefix(body, p))
	}

	start := bytes.IndexByte(body, '{')
	end := bytes.LastIndexByte(body, '}')
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON object in %d bytes", ErrMalformedResponse, len(raw))
	}

	if err := json.Unmarshal(body[start:end+1], &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &env, nil
}
