package repositories

import "mongolshop/domain"

// SeedCatalog is the fixed initial inventory written on first use.
var SeedCatalog = []domain.Product{
	{
		ID:          "1",
		Name:        "Монгол загварын хантааз",
		Price:       125000,
		Category:    domain.CategoryClothing,
		Image:       "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?auto=format&fit=crop&q=80&w=800",
		Description: "Үндэсний хэв маягийг шингээсэн, дулаахан, загварлаг хантааз.",
	},
	{
		ID:          "2",
		Name:        "Цэвэр ноолууран ороолт",
		Price:       85000,
		Category:    domain.CategoryClothing,
		Image:       "https://images.unsplash.com/photo-1520903920243-00d872a2d1c9?auto=format&fit=crop&q=80&w=800",
		Description: "100% ямааны ноолуураар хийсэн, зөөлөн тансаг мэдрэмж.",
	},
	{
		ID:          "3",
		Name:        "Арьсан түрийвч (Handmade)",
		Price:       55000,
		Category:    domain.CategoryClothing,
		Image:       "https://images.unsplash.com/photo-1627123424574-181ce5171c98?auto=format&fit=crop&q=80&w=800",
		Description: "Монгол үхрийн арьсаар гараар оёж хийсэн эдэлгээ сайтай түрийвч.",
	},
	{
		ID:          "4",
		Name:        "Ухаалаг будаа агшаагч",
		Price:       145000,
		Category:    domain.CategoryElectro,
		Image:       "https://images.unsplash.com/photo-1544233726-9f1d2b27be8b?auto=format&fit=crop&q=80&w=800",
		Description: "Олон үйлдэлтэй, цаг хэмнэх орчин үеийн гэр ахуйн хэрэгсэл.",
	},
	{
		ID:          "5",
		Name:        "Ааруул, ээзгийний багц",
		Price:       25000,
		Category:    domain.CategoryFood,
		Image:       "https://images.unsplash.com/photo-1626139576127-4522902b7407?auto=format&fit=crop&q=80&w=800",
		Description: "Архангай аймгийн цэвэр экологийн цагаан идээний дээж.",
	},
	{
		ID:          "6",
		Name:        "Эсгий таавчиг",
		Price:       35000,
		Category:    domain.CategoryClothing,
		Image:       "https://plus.unsplash.com/premium_photo-1675276508359-5759e6659c03?auto=format&fit=crop&q=80&w=800",
		Description: "Хонины ноосон эсгийгээр хийсэн, хөлд эвтэйхэн дулаахан таавчиг.",
	},
	{
		ID:          "7",
		Name:        "Гэр бүлийн цайны иж бүрдэл",
		Price:       68000,
		Category:    domain.CategoryHousehold,
		Image:       "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&q=80&w=800",
		Description: "Уламжлалт хээ угалзтай шаазан аяга, гүцний ком.",
	},
	{
		ID:          "8",
		Name:        "Борцтой шөл (Бэлэн хоол)",
		Price:       8500,
		Category:    domain.CategoryFood,
		Image:       "https://images.unsplash.com/photo-1547592166-23acbe346499?auto=format&fit=crop&q=80&w=800",
		Description: "Аялал зугаалгаар авч явахад тохиромжтой хатаасан борцтой шөл.",
	},
}
