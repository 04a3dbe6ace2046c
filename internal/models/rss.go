package models

import "encoding/xml"

// RSS представляет корневой элемент RSS-документа.
// Имя корня не фиксируется тегом, чтобы чужой корень распознавался как ошибка формата, а не разбора.
type RSS struct {
	XMLName xml.Name
	Channel *Channel `xml:"channel"`
}

// Channel содержит заголовок и список элементов Item.
type Channel struct {
	Title string `xml:"title"`
	Items []Item `xml:"item"`
}

// Item представляет одну публикацию из RSS-ленты.
// Указатели отличают отсутствующий элемент (nil) от пустого.
type Item struct {
	Title       *string
	Description *string
	PubDate     *string
	Link        *string
}

type itemElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// UnmarshalXML берёт только элементы без пространства имён и только первое вхождение каждого:
// media:title или dc:description не должны перезаписывать title и description.
func (it *Item) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw struct {
		Elements []itemElement `xml:",any"`
	}
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}

	for _, el := range raw.Elements {
		if el.XMLName.Space != "" {
			continue
		}
		value := el.Value
		switch el.XMLName.Local {
		case "title":
			setOnce(&it.Title, value)
		case "description":
			setOnce(&it.Description, value)
		case "pubDate":
			setOnce(&it.PubDate, value)
		case "link":
			setOnce(&it.Link, value)
		}
	}
	return nil
}

func setOnce(field **string, value string) {
	if *field == nil {
		*field = &value
	}
}
