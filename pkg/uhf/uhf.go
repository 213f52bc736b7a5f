package uhf

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"regexp"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultURL is the shell service endpoint the footer fragment is pulled
// from.
const DefaultURL = "https://uhf.microsoft.com/en-US/shell/xml/AZCloudNative?headerId=AZCloudNativeHeader&footerId=AZCloudNativeFooter"

const (
	requestTimeout = time.Second * 30
	maxRetries     = 3
)

// Fragment is the uhf.json artifact: the footer markup plus its css and
// script includes, all raw strings passed through to the page shell.
type Fragment struct {
	CSSIncludes        string `json:"cssIncludes"`
	JavascriptIncludes string `json:"javascriptIncludes"`
	FooterHTML         string `json:"footerHtml"`
}

// Empty is the fallback written when the fetch fails. The build never
// fails on a missing footer.
func Empty() Fragment {
	return Fragment{}
}

// Fetch pulls the shell XML and extracts the CDATA blocks. Transient
// failures are retried with exponential backoff before giving up.
func Fetch(url string) (Fragment, error) {
	client := &http.Client{Timeout: requestTimeout}

	var body []byte
	operation := func() error {
		resp, err := client.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("got status %d from %s", resp.StatusCode, url)
			// 4xx is definitive, retrying cannot change the answer.
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		body, err = ioutil.ReadAll(resp.Body)
		return err
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	if err := backoff.Retry(operation, policy); err != nil {
		return Empty(), err
	}

	xml := string(body)
	return Fragment{
		CSSIncludes:        extractCDATA(xml, "cssIncludes"),
		JavascriptIncludes: extractCDATA(xml, "javascriptIncludes"),
		FooterHTML:         extractCDATA(xml, "footerHtml"),
	}, nil
}

func extractCDATA(xml, tag string) string {
	pattern := regexp.MustCompile(`(?s)<` + tag + `>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + tag + `>`)
	match := pattern.FindStringSubmatch(xml)
	if match == nil {
		return ""
	}
	return match[1]
}
