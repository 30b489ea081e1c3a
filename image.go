package main

import "fmt"

// exampleIDs фиксированный список идентификаторов для /images
var exampleIDs = []string{"11111", "22222", "33333", "23333"}

// WebImage представляет изображение, привязанное к хосту запроса
type WebImage struct {
	ID   string // Идентификатор, он же имя файла без расширения
	Host string // Значение заголовка Host
}

// NewWebImage создает изображение для данного id и хоста
func NewWebImage(id, host string) WebImage {
	return WebImage{ID: id, Host: host}
}

// RawPath возвращает путь к файлу изображения внутри dir.
// id не проверяется и не очищается, путь не нормализуется.
func (img WebImage) RawPath(dir string) string {
	return fmt.Sprintf("%s/%s.jpg", dir, img.ID)
}

// RawURL возвращает абсолютный адрес сырых байтов изображения
func (img WebImage) RawURL() string {
	return fmt.Sprintf("http://%s/images/%s/raw", img.Host, img.ID)
}

func (img WebImage) Response() ImageResponse {
	return ImageResponse{ID: img.ID, RawURL: img.RawURL()}
}

// WebImageList упорядоченный список изображений
type WebImageList struct {
	Images []WebImage
}

// NewWebImageList собирает список в порядке ids
func NewWebImageList(ids []string, host string) WebImageList {
	list := WebImageList{Images: make([]WebImage, 0, len(ids))}
	for _, id := range ids {
		list.Images = append(list.Images, NewWebImage(id, host))
	}
	return list
}

func (l WebImageList) Response() ImageListResponse {
	resp := ImageListResponse{Images: make([]ImageResponse, 0, len(l.Images))}
	for _, img := range l.Images {
		resp.Images = append(resp.Images, img.Response())
	}
	return resp
}
