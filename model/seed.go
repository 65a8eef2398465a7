package model

import "github.com/muhammadheryan/sanitary-shop/constant"

// SeedProducts returns a fresh copy of the built-in catalog used when nothing
// usable is persisted.
func SeedProducts() Catalog {
	return Catalog{
		{
			ID:            "1",
			Name:          "Bồn cầu 1 khối Nano Men Tuyết",
			Code:          "BC-001",
			Category:      constant.CategoryToilet,
			Price:         2500000,
			OriginalPrice: 3800000,
			Description:   "Công nghệ xả xoáy 4D, men nano chống bám bẩn, nắp đóng êm.",
			Image:         "https://picsum.photos/id/10/600/600",
			Images: []string{
				"https://picsum.photos/id/10/600/600",
				"https://picsum.photos/id/11/600/600",
				"https://picsum.photos/id/12/600/600",
				"https://picsum.photos/id/13/600/600",
			},
			IsPopular: true,
			InStock:   true,
		},
		{
			ID:            "2",
			Name:          "Lavabo đặt bàn đá ceramic",
			Code:          "LV-202",
			Category:      constant.CategoryLavabo,
			Price:         850000,
			OriginalPrice: 1200000,
			Description:   "Thiết kế hiện đại, viền mỏng, dễ dàng vệ sinh.",
			Image:         "https://picsum.photos/id/20/600/600",
			Images: []string{
				"https://picsum.photos/id/20/600/600",
				"https://picsum.photos/id/21/600/600",
			},
			InStock: true,
		},
		{
			ID:            "3",
			Name:          "Sen cây tắm đứng phím đàn",
			Code:          "SC-303",
			Category:      constant.CategoryShower,
			Price:         3200000,
			OriginalPrice: 4500000,
			Description:   "Chất liệu đồng thau mạ crom/niken, hiển thị nhiệt độ nước.",
			Image:         "https://picsum.photos/id/30/600/600",
			Images: []string{
				"https://picsum.photos/id/30/600/600",
				"https://picsum.photos/id/31/600/600",
				"https://picsum.photos/id/32/600/600",
			},
			IsPopular: true,
			InStock:   true,
		},
		{
			ID:          "4",
			Name:        "Vòi lavabo nóng lạnh 304",
			Code:        "VL-404",
			Category:    constant.CategoryFaucet,
			Price:       450000,
			Description: "Inox 304 mờ, không gỉ sét, bảo hành 3 năm.",
			Image:       "https://picsum.photos/id/40/600/600",
			Images:      []string{"https://picsum.photos/id/40/600/600"},
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Gương đèn LED cảm ứng",
			Code:        "G-505",
			Category:    constant.CategoryAccessory,
			Price:       1100000,
			Description: "Phôi gương Bỉ, led vàng ấm, có sấy gương chống mờ.",
			Image:       "https://picsum.photos/id/50/600/600",
			Images:      []string{"https://picsum.photos/id/50/600/600"},
			IsPopular:   true,
			InStock:     true,
		},
		{
			ID:            "6",
			Name:          "Combo Phòng Tắm Tiêu Chuẩn",
			Code:          "CB-001",
			Category:      constant.CategoryCombo,
			Price:         5990000,
			OriginalPrice: 7500000,
			Description:   "Bao gồm: Bồn cầu, Lavabo, Vòi sen, Gương, Phụ kiện 6 món.",
			Image:         "https://picsum.photos/id/60/600/600",
			Images: []string{
				"https://picsum.photos/id/60/600/600",
				"https://picsum.photos/id/61/600/600",
				"https://picsum.photos/id/62/600/600",
			},
			IsPopular: true,
			InStock:   true,
		},
		{
			ID:            "7",
			Name:          "Bồn cầu thông minh tự động",
			Code:          "BC-SMART",
			Category:      constant.CategoryToilet,
			Price:         8900000,
			OriginalPrice: 12000000,
			Description:   "Tự động đóng mở, xịt rửa, sấy khô, sưởi bệ ngồi.",
			Image:         "https://picsum.photos/id/70/600/600",
			Images:        []string{"https://picsum.photos/id/70/600/600"},
			InStock:       false,
		},
		{
			ID:          "8",
			Name:        "Vòi xịt vệ sinh tăng áp",
			Code:        "VX-88",
			Category:    constant.CategoryAccessory,
			Price:       150000,
			Description: "Nhựa ABS chịu lực, dây xoắn chống rối.",
			Image:       "https://picsum.photos/id/80/600/600",
			Images:      []string{"https://picsum.photos/id/80/600/600"},
			InStock:     true,
		},
	}
}
