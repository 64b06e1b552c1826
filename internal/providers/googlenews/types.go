package googlenews

import "encoding/xml"

type rssDocument struct {
	XMLName xml.Name  `xml:"rss"`
	Items   []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string     `xml:"title"`
	Link    string     `xml:"link"`
	PubDate string     `xml:"pubDate"`
	Source  *rssSource `xml:"source"`
}

type rssSource struct {
	URL  string `xml:"url,attr"`
	Name string `xml:",chardata"`
}
