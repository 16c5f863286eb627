// Пакет content — структура контента сайта (услуги, проекты портфолио, контакты).
// Контент хранится во встроенном content.toml; локализуемые тексты
// лежат в каталогах i18n и адресуются по ключам услуг и slug проектов.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/bigkaa/portfolio-site/internal/ui/placeholder"
)

//go:embed content.toml
var embedded []byte

// ErrInvalidContent — контент не прошёл валидацию.
var ErrInvalidContent = errors.New("content: некорректный контент")

// Site — общие данные сайта.
type Site struct {
	Brand string `toml:"brand"`
	Email string `toml:"email"`
	// SocialImage — путь или URL картинки для og:image.
	SocialImage string `toml:"social_image"`
}

// Service — услуга в секции "Что мы делаем".
type Service struct {
	Key  string `toml:"key"`
	Icon string `toml:"icon"`
}

// NameKey возвращает ключ перевода названия услуги.
func (s Service) NameKey() string { return "common.services." + s.Key + ".name" }

// TextKey возвращает ключ перевода описания услуги.
func (s Service) TextKey() string { return "common.services." + s.Key + ".text" }

// Image — размеры картинки-заглушки.
type Image struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Project — проект в портфолио.
type Project struct {
	Slug  string   `toml:"slug"`
	Year  int      `toml:"year"`
	Tags  []string `toml:"tags"`
	Image Image    `toml:"image"`
}

// NameKey возвращает ключ перевода названия проекта.
func (p Project) NameKey() string { return "portfolio.projects." + p.Slug + ".name" }

// TextKey возвращает ключ перевода описания проекта.
func (p Project) TextKey() string { return "portfolio.projects." + p.Slug + ".text" }

// Contact — ссылка на внешний профиль.
type Contact struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// Content — весь контент сайта.
type Content struct {
	Site     Site      `toml:"site"`
	Services []Service `toml:"services"`
	Projects []Project `toml:"projects"`
	Contacts []Contact `toml:"contacts"`
}

// Load загружает встроенный контент.
func Load() (*Content, error) {
	return Parse(embedded)
}

// Parse разбирает и валидирует TOML-контент.
func Parse(data []byte) (*Content, error) {
	var c Content
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("content: ошибка парсинга TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: неизвестный ключ %q", ErrInvalidContent, undecoded[0].String())
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if c.Site.Brand == "" {
		return fmt.Errorf("%w: site.brand не задан", ErrInvalidContent)
	}

	services := make(map[string]struct{}, len(c.Services))
	for i, s := range c.Services {
		if s.Key == "" {
			return fmt.Errorf("%w: services[%d].key пустой", ErrInvalidContent, i)
		}
		if _, dup := services[s.Key]; dup {
			return fmt.Errorf("%w: дублирующийся ключ услуги %q", ErrInvalidContent, s.Key)
		}
		services[s.Key] = struct{}{}
	}

	projects := make(map[string]struct{}, len(c.Projects))
	for i, p := range c.Projects {
		if p.Slug == "" {
			return fmt.Errorf("%w: projects[%d].slug пустой", ErrInvalidContent, i)
		}
		if _, dup := projects[p.Slug]; dup {
			return fmt.Errorf("%w: дублирующийся slug проекта %q", ErrInvalidContent, p.Slug)
		}
		// Картинки проектов отдаются заглушкой, размер обязан пройти её проверку.
		if err := placeholder.ValidateSize(p.Image.Width, p.Image.Height); err != nil {
			return fmt.Errorf("%w: проект %q: %w", ErrInvalidContent, p.Slug, err)
		}
		projects[p.Slug] = struct{}{}
	}

	return nil
}
