// internal/catalog/cards_data.go
package catalog

import "bingo-engine/internal/domain"

const free = domain.FreeCell

// standardCards is the fixed 200-card deck, indexed by card id minus one.
var standardCards = [domain.CatalogSize]domain.Grid{
	{14, 12, 10, 5, 9, 17, 27, 29, 20, 28, 35, 31, free, 43, 44, 49, 58, 46, 53, 54, 65, 67, 75, 72, 68},
	{7, 13, 2, 11, 4, 23, 26, 29, 17, 24, 35, 40, free, 41, 37, 60, 53, 47, 57, 49, 65, 70, 63, 64, 72},
	{4, 6, 7, 15, 3, 25, 23, 19, 20, 28, 40, 45, free, 42, 32, 51, 54, 58, 52, 60, 71, 65, 66, 67, 62},
	{1, 13, 7, 12, 11, 30, 29, 19, 28, 26, 34, 33, free, 40, 41, 54, 59, 47, 53, 48, 68, 62, 61, 65, 66},
	{7, 2, 1, 4, 15, 23, 21, 16, 30, 28, 37, 34, free, 44, 32, 49, 48, 47, 51, 52, 67, 64, 74, 61, 73},
	{8, 13, 12, 5, 2, 24, 30, 27, 26, 21, 42, 33, free, 40, 35, 53, 51, 60, 56, 52, 61, 65, 70, 74, 71},
	{2, 11, 6, 8, 9, 29, 19, 17, 20, 25, 38, 37, free, 31, 40, 54, 48, 50, 57, 58, 68, 75, 69, 71, 61},
	{5, 11, 9, 7, 13, 17, 20, 24, 22, 16, 42, 41, free, 33, 40, 56, 55, 49, 51, 60, 71, 65, 74, 61, 69},
	{1, 4, 11, 5, 7, 21, 17, 18, 26, 25, 32, 33, free, 45, 40, 52, 51, 49, 60, 54, 68, 64, 74, 65, 73},
	{14, 5, 4, 9, 10, 28, 18, 21, 23, 27, 42, 44, free, 36, 33, 56, 51, 47, 58, 60, 63, 68, 61, 64, 67},
	{7, 10, 5, 8, 4, 19, 22, 21, 30, 17, 33, 34, free, 38, 41, 56, 49, 60, 46, 58, 68, 69, 66, 61, 74},
	{9, 11, 6, 12, 15, 22, 26, 28, 17, 20, 40, 43, free, 39, 33, 52, 49, 50, 51, 60, 63, 62, 70, 71, 73},
	{10, 12, 5, 7, 4, 25, 22, 26, 17, 16, 42, 36, free, 43, 37, 56, 59, 46, 53, 60, 70, 75, 74, 68, 71},
	{5, 1, 13, 15, 4, 29, 26, 17, 18, 22, 42, 35, free, 43, 44, 53, 51, 50, 46, 55, 61, 68, 64, 70, 63},
	{11, 12, 6, 7, 8, 26, 16, 19, 23, 18, 35, 42, free, 34, 32, 50, 51, 55, 49, 53, 68, 70, 66, 64, 62},
	{8, 15, 13, 3, 9, 27, 30, 17, 29, 23, 44, 40, free, 33, 43, 51, 57, 47, 60, 55, 71, 63, 61, 75, 66},
	{15, 13, 5, 1, 4, 24, 20, 18, 16, 28, 31, 34, free, 35, 44, 52, 53, 50, 57, 47, 62, 64, 68, 67, 70},
	{9, 12, 7, 1, 15, 28, 21, 18, 24, 29, 36, 40, free, 39, 45, 53, 48, 52, 57, 51, 72, 68, 70, 62, 73},
	{14, 13, 7, 15, 5, 17, 26, 22, 19, 23, 34, 44, free, 39, 41, 56, 52, 46, 48, 51, 73, 70, 68, 65, 62},
	{7, 3, 11, 8, 12, 18, 29, 27, 25, 21, 38, 31, free, 34, 42, 55, 56, 60, 52, 57, 63, 71, 75, 70, 64},
	{15, 14, 2, 3, 5, 23, 27, 18, 21, 29, 45, 42, free, 38, 41, 48, 49, 54, 46, 53, 62, 69, 64, 70, 71},
	{15, 4, 8, 11, 14, 21, 30, 28, 19, 25, 32, 37, free, 42, 36, 51, 58, 59, 60, 56, 72, 68, 62, 63, 67},
	{9, 11, 5, 14, 6, 22, 18, 30, 29, 27, 36, 38, free, 41, 37, 48, 50, 55, 51, 49, 62, 73, 72, 75, 74},
	{14, 15, 11, 12, 10, 28, 23, 29, 24, 21, 42, 32, free, 39, 34, 52, 49, 56, 59, 55, 61, 62, 63, 69, 68},
	{3, 8, 4, 11, 7, 28, 22, 18, 29, 24, 31, 43, free, 41, 32, 49, 52, 53, 57, 55, 64, 69, 62, 70, 67},
	{13, 5, 3, 8, 6, 24, 16, 30, 25, 28, 40, 39, free, 38, 32, 47, 54, 49, 46, 57, 67, 74, 73, 62, 72},
	{4, 3, 7, 9, 6, 19, 26, 27, 18, 22, 33, 32, free, 36, 38, 50, 60, 51, 53, 58, 66, 72, 73, 63, 64},
	{15, 13, 4, 10, 6, 21, 17, 27, 19, 23, 37, 31, free, 38, 44, 53, 52, 60, 59, 48, 67, 66, 73, 74, 75},
	{15, 5, 3, 4, 12, 19, 29, 22, 21, 17, 42, 32, free, 34, 43, 53, 55, 52, 49, 48, 63, 61, 65, 64, 75},
	{3, 13, 15, 11, 9, 28, 20, 26, 23, 18, 43, 33, free, 39, 44, 60, 57, 58, 46, 59, 70, 72, 69, 71, 61},
	{8, 15, 1, 12, 13, 28, 24, 27, 22, 17, 45, 33, free, 41, 44, 55, 60, 49, 56, 59, 71, 72, 68, 75, 62},
	{8, 2, 4, 15, 9, 24, 23, 18, 29, 19, 34, 39, free, 45, 37, 59, 58, 51, 48, 52, 66, 72, 75, 63, 74},
	{12, 11, 15, 10, 3, 24, 26, 28, 21, 23, 43, 40, free, 33, 41, 47, 56, 59, 58, 55, 70, 61, 65, 71, 63},
	{4, 15, 5, 10, 2, 16, 17, 30, 21, 18, 45, 37, free, 42, 32, 48, 58, 59, 51, 49, 62, 65, 71, 69, 66},
	{12, 6, 3, 4, 15, 24, 27, 19, 18, 21, 41, 33, free, 43, 31, 48, 60, 47, 54, 52, 64, 70, 61, 69, 67},
	{5, 12, 6, 2, 14, 24, 16, 26, 27, 18, 38, 31, free, 39, 33, 59, 60, 54, 52, 51, 62, 73, 72, 74, 66},
	{11, 10, 14, 3, 8, 18, 23, 19, 24, 20, 44, 41, free, 34, 36, 53, 50, 59, 55, 48, 64, 69, 74, 66, 75},
	{12, 14, 8, 11, 3, 27, 18, 16, 20, 23, 44, 31, free, 40, 37, 59, 49, 53, 57, 48, 70, 68, 65, 74, 62},
	{7, 5, 3, 2, 4, 20, 21, 24, 27, 30, 33, 36, free, 32, 34, 51, 48, 54, 55, 50, 69, 72, 66, 70, 62},
	{2, 7, 13, 3, 1, 22, 21, 16, 27, 18, 42, 45, free, 36, 37, 49, 54, 50, 59, 53, 69, 66, 61, 72, 64},
	{4, 6, 15, 3, 9, 23, 30, 21, 22, 25, 35, 44, free, 43, 40, 58, 59, 60, 54, 56, 73, 61, 75, 71, 74},
	{13, 3, 12, 2, 14, 28, 18, 22, 20, 29, 39, 38, free, 33, 37, 46, 56, 59, 50, 54, 75, 74, 69, 65, 66},
	{4, 9, 7, 15, 6, 25, 26, 19, 21, 29, 37, 41, free, 31, 36, 47, 51, 55, 57, 54, 69, 64, 74, 61, 67},
	{7, 9, 3, 10, 2, 20, 22, 30, 25, 28, 41, 37, free, 40, 33, 58, 48, 53, 56, 46, 62, 67, 68, 71, 66},
	{1, 10, 2, 11, 7, 29, 23, 16, 18, 25, 40, 41, free, 39, 45, 50, 54, 49, 53, 60, 70, 75, 73, 72, 69},
	{11, 9, 3, 15, 5, 24, 18, 25, 23, 16, 39, 34, free, 38, 33, 58, 48, 50, 54, 49, 75, 70, 61, 67, 68},
	{11, 4, 13, 14, 5, 25, 18, 27, 30, 21, 40, 37, free, 35, 42, 60, 49, 55, 53, 46, 70, 61, 74, 73, 71},
	{13, 12, 7, 14, 10, 18, 27, 23, 26, 24, 38, 36, free, 34, 44, 49, 55, 57, 46, 51, 61, 71, 73, 75, 68},
	{8, 11, 6, 7, 9, 20, 24, 29, 18, 28, 36, 44, free, 33, 39, 48, 49, 57, 51, 59, 63, 72, 68, 66, 73},
	{1, 2, 6, 11, 4, 18, 28, 20, 23, 19, 31, 43, free, 44, 40, 55, 48, 54, 57, 47, 75, 73, 61, 64, 66},
	{4, 6, 5, 2, 14, 17, 20, 21, 18, 28, 42, 40, free, 34, 38, 46, 56, 51, 50, 55, 74, 69, 62, 65, 64},
	{5, 9, 6, 7, 10, 18, 28, 17, 26, 19, 32, 42, free, 37, 34, 54, 47, 56, 53, 48, 68, 71, 70, 63, 67},
	{13, 12, 15, 11, 5, 16, 26, 22, 24, 18, 40, 34, free, 43, 31, 53, 46, 60, 51, 54, 68, 75, 71, 62, 72},
	{6, 1, 7, 5, 14, 27, 16, 30, 17, 28, 45, 38, free, 34, 37, 48, 52, 47, 46, 50, 64, 65, 67, 73, 71},
	{2, 1, 3, 8, 13, 16, 19, 24, 26, 28, 39, 31, free, 41, 38, 49, 51, 60, 48, 53, 72, 71, 73, 62, 70},
	{3, 15, 8, 2, 11, 23, 16, 20, 27, 28, 33, 41, free, 37, 43, 58, 54, 50, 59, 48, 67, 72, 68, 71, 73},
	{12, 9, 5, 7, 15, 19, 24, 23, 21, 30, 32, 35, free, 41, 31, 48, 49, 46, 60, 54, 69, 71, 75, 72, 62},
	{2, 14, 4, 10, 9, 30, 20, 28, 18, 22, 36, 43, free, 38, 40, 51, 46, 47, 50, 54, 62, 66, 67, 61, 63},
	{5, 15, 1, 12, 4, 28, 25, 18, 29, 27, 34, 32, free, 36, 35, 51, 52, 46, 56, 57, 67, 73, 69, 71, 63},
	{1, 10, 14, 7, 6, 28, 27, 17, 24, 21, 41, 44, free, 31, 37, 49, 60, 50, 48, 54, 75, 72, 65, 66, 64},
	{5, 4, 9, 6, 1, 25, 21, 20, 30, 16, 36, 44, free, 37, 40, 46, 59, 55, 51, 53, 64, 72, 68, 70, 74},
	{9, 7, 12, 3, 14, 16, 28, 20, 27, 29, 35, 37, free, 43, 39, 48, 49, 60, 56, 46, 71, 64, 73, 65, 63},
	{4, 9, 2, 7, 6, 23, 18, 19, 28, 16, 41, 45, free, 35, 40, 56, 50, 46, 54, 51, 64, 72, 70, 65, 61},
	{3, 13, 5, 11, 2, 25, 23, 21, 20, 28, 41, 44, free, 42, 37, 59, 47, 51, 53, 54, 71, 67, 65, 66, 75},
	{4, 5, 14, 1, 8, 23, 17, 21, 25, 29, 35, 39, free, 41, 42, 51, 49, 46, 55, 60, 72, 67, 65, 75, 69},
	{4, 8, 12, 14, 3, 21, 29, 24, 23, 17, 36, 40, free, 37, 32, 51, 50, 47, 59, 57, 65, 67, 66, 61, 75},
	{13, 15, 11, 5, 12, 21, 26, 22, 24, 30, 37, 34, free, 45, 41, 47, 48, 54, 50, 58, 74, 61, 62, 75, 66},
	{14, 4, 10, 9, 1, 30, 20, 18, 21, 23, 45, 36, free, 31, 33, 53, 58, 47, 46, 48, 70, 69, 67, 65, 73},
	{2, 10, 11, 12, 13, 26, 30, 29, 20, 17, 38, 41, free, 36, 40, 55, 60, 52, 59, 47, 62, 66, 71, 75, 65},
	{5, 1, 10, 13, 14, 28, 20, 27, 25, 19, 38, 39, free, 45, 34, 49, 50, 51, 55, 46, 68, 66, 65, 72, 70},
	{15, 13, 2, 7, 14, 23, 25, 22, 26, 21, 39, 33, free, 44, 32, 58, 47, 55, 59, 56, 61, 62, 71, 75, 73},
	{11, 2, 9, 8, 1, 24, 21, 17, 29, 19, 42, 32, free, 34, 35, 56, 52, 48, 58, 47, 61, 65, 62, 68, 63},
	{12, 8, 9, 15, 4, 27, 16, 21, 22, 23, 44, 39, free, 43, 41, 56, 57, 46, 51, 60, 63, 75, 61, 68, 64},
	{4, 10, 11, 12, 3, 25, 27, 16, 23, 18, 44, 45, free, 41, 31, 46, 57, 59, 55, 54, 72, 73, 66, 75, 69},
	{1, 2, 6, 8, 11, 23, 17, 19, 16, 20, 34, 33, free, 35, 41, 55, 51, 50, 47, 48, 66, 67, 61, 72, 64},
	{15, 9, 6, 4, 8, 21, 20, 16, 29, 18, 32, 43, free, 33, 31, 48, 56, 59, 58, 51, 65, 63, 61, 71, 72},
	{14, 6, 3, 11, 9, 23, 29, 22, 19, 30, 32, 41, free, 40, 38, 49, 48, 60, 57, 59, 69, 64, 63, 72, 75},
	{10, 7, 12, 5, 11, 30, 16, 23, 26, 18, 33, 36, free, 32, 44, 47, 59, 50, 55, 54, 71, 68, 72, 70, 73},
	{15, 2, 6, 13, 11, 23, 24, 17, 28, 21, 32, 38, free, 34, 42, 54, 53, 47, 59, 60, 72, 67, 73, 74, 63},
	{3, 11, 1, 4, 7, 30, 27, 17, 25, 26, 41, 34, free, 37, 42, 46, 56, 51, 52, 48, 67, 69, 63, 73, 61},
	{9, 5, 15, 4, 12, 27, 30, 28, 26, 29, 40, 31, free, 42, 38, 50, 49, 47, 57, 60, 65, 61, 64, 68, 74},
	{10, 6, 8, 15, 3, 29, 23, 27, 30, 25, 41, 45, free, 39, 40, 60, 54, 48, 57, 56, 63, 72, 74, 66, 65},
	{10, 14, 5, 8, 7, 25, 29, 27, 26, 20, 36, 42, free, 40, 34, 56, 57, 49, 46, 55, 63, 65, 75, 70, 68},
	{13, 15, 5, 4, 3, 24, 27, 19, 25, 21, 43, 44, free, 31, 32, 58, 51, 48, 54, 57, 70, 67, 61, 75, 64},
	{4, 10, 2, 8, 5, 24, 20, 16, 18, 27, 34, 35, free, 43, 44, 48, 46, 50, 57, 49, 75, 63, 65, 73, 72},
	{13, 3, 8, 15, 2, 21, 18, 28, 29, 24, 35, 44, free, 41, 43, 60, 55, 59, 49, 58, 61, 66, 72, 73, 69},
	{12, 6, 1, 8, 11, 16, 30, 26, 21, 24, 44, 34, free, 43, 33, 52, 57, 53, 46, 47, 74, 66, 65, 68, 64},
	{6, 14, 15, 12, 9, 23, 28, 30, 22, 21, 42, 32, free, 33, 41, 48, 50, 53, 54, 47, 67, 72, 66, 65, 70},
	{10, 11, 5, 14, 3, 30, 16, 18, 28, 29, 37, 31, free, 35, 33, 54, 53, 57, 46, 52, 74, 69, 61, 71, 67},
	{15, 4, 6, 1, 12, 26, 29, 30, 25, 21, 37, 35, free, 39, 41, 57, 47, 53, 50, 59, 74, 64, 75, 61, 63},
	{11, 6, 3, 10, 14, 30, 25, 24, 23, 22, 32, 33, free, 44, 42, 52, 60, 54, 51, 46, 74, 66, 65, 62, 75},
	{15, 7, 3, 4, 9, 18, 17, 22, 28, 26, 38, 40, free, 33, 36, 56, 51, 49, 55, 52, 69, 61, 63, 62, 74},
	{12, 10, 14, 11, 6, 18, 24, 25, 20, 16, 38, 39, free, 35, 42, 54, 48, 51, 52, 57, 69, 68, 61, 73, 65},
	{3, 12, 9, 8, 13, 21, 28, 17, 25, 27, 31, 42, free, 34, 40, 49, 51, 58, 57, 53, 72, 61, 67, 63, 64},
	{12, 5, 11, 2, 1, 29, 17, 20, 19, 18, 31, 39, free, 36, 35, 57, 50, 54, 56, 52, 71, 72, 62, 73, 75},
	{14, 3, 12, 11, 8, 25, 21, 20, 22, 17, 43, 34, free, 32, 39, 50, 54, 49, 57, 60, 69, 66, 61, 68, 74},
	{10, 13, 15, 4, 9, 29, 17, 22, 21, 24, 36, 44, free, 43, 34, 55, 57, 58, 47, 54, 63, 71, 67, 69, 68},
	{6, 3, 13, 14, 15, 22, 21, 29, 30, 23, 37, 41, free, 45, 36, 51, 54, 59, 57, 53, 67, 68, 64, 61, 71},
	{5, 1, 9, 11, 13, 28, 22, 23, 27, 25, 31, 42, free, 41, 44, 50, 57, 48, 56, 60, 71, 74, 62, 72, 63},
	{11, 8, 15, 9, 14, 29, 30, 25, 17, 24, 38, 34, free, 42, 43, 54, 60, 57, 48, 59, 67, 75, 72, 71, 64},
	{13, 10, 6, 12, 8, 23, 29, 20, 19, 17, 35, 43, free, 45, 36, 52, 56, 50, 55, 47, 65, 70, 69, 64, 73},
	{9, 12, 15, 10, 6, 19, 21, 30, 16, 27, 40, 41, free, 37, 38, 51, 55, 60, 53, 47, 66, 74, 62, 68, 72},
	{5, 1, 7, 11, 14, 19, 27, 26, 25, 17, 34, 37, free, 33, 32, 46, 54, 47, 52, 50, 71, 64, 74, 67, 72},
	{9, 14, 13, 12, 15, 17, 22, 23, 19, 20, 33, 43, free, 44, 36, 57, 58, 52, 55, 54, 61, 65, 74, 71, 70},
	{12, 15, 13, 1, 2, 24, 16, 29, 21, 18, 34, 36, free, 37, 35, 58, 48, 47, 46, 60, 71, 75, 63, 68, 61},
	{8, 5, 3, 10, 12, 21, 26, 29, 25, 24, 37, 32, free, 39, 36, 48, 52, 59, 58, 55, 74, 73, 72, 69, 70},
	{13, 3, 9, 14, 6, 17, 22, 26, 21, 30, 42, 36, free, 39, 43, 57, 49, 55, 60, 51, 70, 69, 63, 75, 67},
	{2, 6, 8, 1, 13, 21, 29, 25, 19, 27, 36, 40, free, 34, 39, 53, 59, 55, 50, 60, 70, 64, 68, 72, 75},
	{12, 5, 8, 4, 15, 28, 16, 29, 19, 30, 36, 45, free, 31, 42, 54, 56, 59, 46, 60, 75, 62, 70, 61, 72},
	{1, 3, 9, 5, 12, 21, 19, 23, 27, 22, 34, 38, free, 31, 41, 48, 49, 52, 60, 47, 61, 70, 74, 64, 72},
	{9, 1, 14, 2, 12, 26, 19, 29, 17, 20, 38, 40, free, 41, 34, 51, 57, 56, 48, 54, 65, 68, 64, 66, 69},
	{1, 11, 6, 13, 8, 20, 23, 24, 30, 17, 34, 37, free, 43, 44, 55, 46, 48, 54, 60, 73, 70, 72, 63, 62},
	{15, 6, 5, 11, 7, 30, 16, 20, 22, 26, 33, 42, free, 32, 38, 49, 55, 57, 54, 47, 64, 68, 66, 65, 74},
	{4, 6, 5, 14, 3, 17, 16, 28, 27, 22, 33, 31, free, 35, 36, 47, 54, 56, 49, 57, 70, 64, 62, 63, 68},
	{15, 6, 10, 2, 7, 22, 17, 29, 25, 19, 33, 37, free, 31, 43, 50, 46, 59, 53, 58, 68, 70, 72, 64, 71},
	{3, 2, 13, 15, 12, 19, 28, 20, 25, 30, 39, 37, free, 35, 34, 60, 46, 51, 52, 55, 70, 61, 63, 75, 69},
	{4, 11, 12, 5, 1, 28, 21, 16, 18, 30, 44, 39, free, 31, 40, 51, 47, 60, 53, 52, 69, 65, 61, 70, 67},
	{14, 5, 4, 10, 12, 29, 20, 30, 21, 26, 34, 39, free, 32, 33, 54, 47, 50, 56, 55, 70, 66, 68, 74, 62},
	{2, 5, 11, 10, 14, 24, 22, 23, 17, 20, 38, 40, free, 45, 31, 53, 56, 47, 60, 50, 66, 73, 67, 68, 64},
	{8, 12, 3, 5, 10, 21, 20, 19, 24, 16, 33, 35, free, 32, 40, 49, 54, 58, 56, 57, 70, 63, 64, 71, 66},
	{6, 5, 15, 14, 12, 21, 19, 30, 17, 25, 40, 32, free, 36, 34, 52, 60, 56, 46, 55, 65, 63, 70, 68, 72},
	{11, 13, 8, 9, 6, 29, 19, 24, 22, 25, 45, 38, free, 39, 44, 54, 57, 49, 48, 46, 63, 75, 71, 69, 68},
	{3, 6, 13, 14, 10, 18, 17, 16, 25, 19, 45, 44, free, 39, 38, 59, 49, 52, 48, 56, 64, 70, 67, 62, 75},
	{12, 13, 10, 4, 6, 25, 22, 30, 18, 26, 39, 32, free, 33, 42, 58, 50, 52, 54, 46, 73, 64, 72, 63, 61},
	{5, 1, 7, 3, 15, 20, 23, 16, 19, 17, 43, 37, free, 36, 44, 49, 52, 53, 59, 55, 62, 72, 64, 67, 74},
	{6, 12, 15, 3, 1, 17, 20, 23, 27, 18, 33, 37, free, 43, 42, 55, 57, 52, 59, 51, 61, 75, 63, 62, 64},
	{4, 15, 1, 7, 13, 23, 16, 25, 27, 28, 39, 40, free, 31, 44, 47, 53, 49, 57, 54, 63, 61, 66, 72, 73},
	{13, 1, 5, 8, 3, 18, 27, 26, 24, 20, 42, 38, free, 41, 32, 56, 60, 59, 46, 55, 67, 69, 72, 74, 70},
	{13, 6, 12, 4, 15, 21, 16, 29, 28, 30, 37, 33, free, 40, 32, 55, 57, 59, 60, 56, 67, 65, 73, 75, 62},
	{10, 8, 2, 3, 12, 29, 25, 27, 17, 21, 40, 35, free, 34, 39, 51, 49, 46, 60, 54, 75, 65, 71, 66, 73},
	{14, 8, 3, 9, 6, 27, 20, 30, 26, 22, 33, 42, free, 45, 32, 59, 46, 57, 51, 52, 75, 68, 73, 62, 74},
	{3, 4, 15, 6, 11, 18, 22, 26, 28, 23, 36, 34, free, 43, 32, 49, 55, 46, 53, 56, 66, 68, 61, 62, 75},
	{12, 7, 6, 3, 2, 22, 24, 16, 28, 26, 44, 32, free, 37, 41, 57, 60, 47, 54, 52, 61, 74, 72, 63, 64},
	{5, 13, 8, 10, 11, 20, 17, 24, 28, 16, 35, 36, free, 44, 43, 46, 54, 56, 53, 48, 75, 68, 67, 65, 70},
	{1, 9, 7, 5, 2, 29, 16, 28, 25, 23, 40, 42, free, 33, 45, 60, 52, 54, 58, 57, 62, 69, 66, 65, 70},
	{7, 15, 10, 6, 12, 19, 30, 22, 21, 26, 43, 31, free, 32, 42, 53, 46, 59, 55, 49, 61, 63, 64, 70, 73},
	{12, 4, 14, 1, 10, 20, 30, 26, 24, 21, 33, 39, free, 38, 43, 56, 54, 52, 46, 48, 61, 74, 66, 73, 64},
	{4, 6, 13, 2, 9, 26, 30, 24, 29, 18, 34, 36, free, 33, 37, 57, 52, 56, 50, 53, 65, 74, 63, 75, 68},
	{10, 11, 8, 14, 15, 21, 19, 20, 25, 18, 42, 41, free, 34, 36, 53, 54, 52, 49, 55, 74, 62, 64, 69, 63},
	{12, 3, 1, 5, 4, 19, 30, 17, 18, 16, 34, 35, free, 31, 45, 51, 57, 50, 47, 55, 71, 73, 70, 67, 61},
	{2, 10, 5, 6, 7, 28, 20, 25, 27, 16, 42, 32, free, 33, 45, 48, 58, 59, 52, 56, 63, 74, 73, 67, 69},
	{1, 15, 14, 8, 9, 26, 25, 20, 22, 19, 42, 36, free, 32, 43, 57, 49, 48, 58, 54, 65, 64, 68, 75, 70},
	{7, 8, 2, 6, 4, 22, 25, 26, 28, 18, 34, 38, free, 31, 32, 51, 52, 60, 56, 57, 71, 66, 73, 68, 74},
	{1, 4, 9, 3, 11, 22, 27, 26, 28, 23, 32, 41, free, 44, 37, 57, 53, 56, 55, 60, 68, 73, 71, 61, 66},
	{8, 1, 10, 6, 9, 24, 21, 27, 29, 25, 45, 40, free, 34, 44, 57, 51, 52, 60, 46, 67, 65, 75, 68, 62},
	{6, 1, 14, 5, 9, 19, 26, 17, 20, 27, 41, 43, free, 32, 33, 50, 52, 55, 54, 47, 70, 62, 74, 61, 72},
	{12, 15, 13, 14, 8, 29, 28, 19, 18, 16, 31, 44, free, 36, 38, 50, 49, 60, 54, 52, 71, 74, 67, 75, 64},
	{2, 13, 5, 4, 9, 17, 26, 20, 18, 21, 37, 40, free, 38, 34, 55, 49, 46, 54, 59, 71, 68, 63, 61, 64},
	{4, 13, 3, 11, 1, 27, 18, 20, 30, 23, 42, 38, free, 34, 33, 58, 60, 57, 56, 47, 64, 66, 73, 69, 75},
	{13, 1, 8, 4, 15, 22, 24, 19, 18, 30, 32, 39, free, 36, 38, 53, 50, 52, 58, 56, 73, 68, 70, 75, 71},
	{11, 7, 12, 1, 6, 30, 23, 21, 17, 26, 45, 42, free, 37, 38, 60, 48, 54, 46, 52, 73, 62, 61, 68, 75},
	{15, 5, 3, 4, 7, 25, 21, 27, 22, 18, 36, 32, free, 40, 37, 58, 59, 48, 50, 52, 72, 64, 61, 66, 74},
	{7, 3, 5, 6, 13, 22, 27, 24, 21, 30, 33, 34, free, 42, 43, 51, 53, 47, 58, 49, 67, 62, 71, 61, 73},
	{10, 9, 15, 14, 13, 22, 27, 28, 18, 25, 36, 39, free, 43, 45, 51, 57, 54, 55, 47, 65, 63, 75, 64, 68},
	{10, 1, 15, 4, 12, 17, 19, 21, 30, 23, 37, 32, free, 38, 34, 60, 58, 50, 55, 49, 62, 72, 69, 61, 68},
	{10, 13, 4, 2, 5, 27, 30, 18, 26, 23, 35, 36, free, 37, 38, 58, 57, 56, 60, 50, 62, 69, 70, 63, 65},
	{1, 15, 3, 13, 2, 27, 16, 19, 24, 23, 44, 38, free, 34, 35, 59, 49, 58, 46, 51, 66, 72, 69, 74, 62},
	{5, 11, 15, 12, 4, 21, 29, 24, 27, 18, 38, 43, free, 36, 34, 59, 60, 49, 56, 52, 69, 67, 72, 63, 74},
	{8, 14, 1, 5, 12, 22, 28, 30, 20, 25, 32, 41, free, 37, 43, 55, 57, 56, 60, 47, 62, 74, 63, 61, 70},
	{10, 11, 6, 12, 15, 20, 26, 18, 27, 28, 43, 39, free, 38, 44, 59, 46, 50, 56, 57, 63, 72, 64, 66, 61},
	{1, 3, 5, 10, 2, 20, 25, 24, 30, 16, 36, 33, free, 45, 37, 50, 60, 52, 53, 47, 74, 71, 67, 63, 62},
	{1, 15, 3, 4, 12, 21, 17, 30, 19, 20, 35, 40, free, 36, 37, 57, 55, 53, 58, 56, 62, 72, 69, 66, 68},
	{11, 2, 13, 12, 8, 27, 23, 17, 29, 26, 42, 34, free, 36, 39, 57, 53, 55, 56, 46, 66, 63, 68, 64, 69},
	{1, 5, 2, 15, 10, 27, 26, 18, 24, 23, 39, 35, free, 41, 33, 54, 51, 47, 55, 52, 64, 62, 68, 70, 75},
	{7, 4, 8, 6, 1, 26, 17, 30, 23, 24, 37, 44, free, 45, 41, 55, 52, 60, 47, 56, 70, 61, 67, 64, 69},
	{11, 5, 7, 12, 14, 24, 23, 27, 16, 28, 38, 33, free, 39, 37, 59, 58, 51, 53, 56, 65, 75, 67, 63, 61},
	{5, 13, 6, 8, 10, 26, 18, 20, 23, 30, 37, 35, free, 40, 44, 47, 59, 55, 57, 51, 68, 71, 66, 74, 70},
	{1, 14, 3, 2, 13, 24, 27, 17, 26, 21, 33, 35, free, 44, 36, 48, 57, 53, 54, 52, 61, 73, 68, 71, 75},
	{10, 12, 3, 8, 15, 27, 20, 25, 22, 29, 37, 36, free, 32, 42, 60, 55, 53, 51, 46, 62, 66, 73, 67, 70},
	{1, 3, 8, 14, 6, 18, 20, 24, 30, 27, 33, 38, free, 44, 45, 50, 60, 58, 54, 52, 71, 72, 62, 66, 70},
	{13, 14, 1, 10, 9, 29, 21, 18, 19, 23, 45, 36, free, 37, 33, 53, 58, 46, 48, 52, 67, 74, 64, 65, 63},
	{13, 9, 7, 8, 5, 28, 24, 16, 18, 23, 40, 38, free, 41, 36, 58, 50, 52, 59, 46, 71, 75, 61, 65, 74},
	{8, 12, 11, 6, 10, 17, 18, 28, 16, 30, 31, 43, free, 40, 34, 55, 49, 48, 60, 54, 72, 67, 61, 73, 71},
	{9, 10, 4, 13, 12, 23, 16, 30, 19, 22, 35, 40, free, 31, 33, 50, 57, 47, 51, 49, 61, 66, 72, 69, 65},
	{4, 10, 6, 7, 15, 29, 23, 16, 18, 22, 44, 43, free, 40, 35, 57, 60, 54, 51, 55, 63, 71, 69, 72, 68},
	{14, 6, 2, 3, 12, 25, 28, 19, 27, 30, 37, 40, free, 34, 41, 51, 47, 49, 60, 54, 66, 73, 69, 75, 62},
	{7, 5, 9, 1, 2, 17, 19, 28, 25, 16, 39, 38, free, 31, 32, 50, 55, 48, 52, 60, 75, 66, 70, 61, 62},
	{2, 6, 5, 4, 1, 18, 26, 16, 23, 17, 35, 32, free, 44, 39, 50, 46, 60, 51, 55, 67, 68, 71, 64, 63},
	{9, 15, 5, 2, 12, 23, 16, 22, 28, 24, 34, 35, free, 39, 37, 46, 57, 55, 51, 47, 61, 62, 74, 66, 72},
	{13, 4, 12, 2, 1, 17, 30, 26, 18, 24, 40, 32, free, 44, 36, 52, 54, 46, 56, 59, 63, 72, 71, 65, 75},
	{8, 9, 10, 14, 2, 28, 17, 29, 25, 22, 32, 34, free, 43, 44, 56, 59, 47, 58, 52, 66, 68, 62, 73, 65},
	{13, 6, 10, 9, 8, 29, 27, 16, 26, 17, 44, 34, free, 39, 41, 48, 49, 60, 55, 53, 74, 63, 69, 71, 67},
	{11, 3, 6, 14, 12, 18, 28, 25, 19, 16, 44, 34, free, 42, 45, 51, 58, 55, 52, 50, 75, 67, 66, 62, 74},
	{14, 3, 13, 12, 9, 27, 21, 18, 20, 19, 38, 31, free, 43, 42, 59, 53, 50, 55, 54, 66, 72, 70, 68, 63},
	{11, 15, 10, 6, 7, 23, 28, 25, 21, 18, 42, 44, free, 31, 37, 53, 51, 59, 46, 47, 65, 75, 73, 67, 72},
	{15, 2, 3, 10, 11, 18, 27, 23, 20, 26, 42, 36, free, 41, 45, 56, 51, 48, 54, 55, 64, 65, 74, 70, 73},
	{7, 6, 4, 12, 5, 16, 25, 26, 24, 19, 42, 45, free, 43, 34, 56, 48, 59, 46, 60, 62, 71, 72, 63, 73},
	{14, 5, 9, 7, 13, 22, 29, 27, 17, 26, 35, 41, free, 42, 39, 58, 49, 50, 56, 48, 73, 68, 72, 61, 74},
	{8, 3, 1, 10, 2, 22, 26, 24, 29, 19, 34, 45, free, 40, 38, 58, 48, 56, 52, 54, 73, 61, 69, 66, 71},
	{2, 1, 15, 3, 7, 20, 28, 25, 29, 19, 33, 36, free, 35, 41, 47, 53, 57, 58, 60, 69, 71, 68, 63, 74},
	{14, 13, 6, 12, 2, 24, 21, 20, 25, 22, 38, 34, free, 33, 32, 58, 52, 59, 48, 56, 65, 74, 62, 64, 61},
	{3, 11, 7, 15, 4, 29, 17, 27, 16, 18, 34, 32, free, 45, 43, 50, 60, 49, 57, 51, 74, 61, 62, 75, 69},
	{2, 10, 7, 1, 5, 28, 17, 21, 16, 19, 32, 31, free, 38, 35, 49, 53, 48, 46, 54, 65, 69, 61, 70, 64},
	{15, 5, 4, 13, 11, 30, 22, 25, 17, 18, 44, 33, free, 38, 45, 56, 54, 57, 49, 55, 68, 64, 66, 63, 65},
	{7, 15, 8, 9, 4, 24, 22, 18, 29, 25, 38, 40, free, 31, 41, 53, 59, 57, 60, 48, 65, 73, 61, 69, 68},
	{4, 8, 10, 13, 1, 17, 24, 16, 29, 22, 37, 40, free, 31, 44, 55, 49, 58, 48, 47, 68, 74, 63, 67, 70},
	{14, 1, 10, 4, 11, 30, 25, 27, 26, 28, 33, 45, free, 43, 34, 48, 49, 54, 58, 47, 74, 65, 73, 62, 69},
	{10, 13, 1, 12, 9, 28, 24, 18, 21, 25, 43, 31, free, 36, 37, 60, 52, 53, 55, 57, 66, 71, 75, 74, 72},
	{7, 10, 8, 6, 9, 17, 24, 23, 30, 16, 33, 44, free, 42, 39, 60, 56, 59, 57, 49, 71, 74, 67, 68, 63},
	{10, 1, 2, 8, 7, 18, 19, 23, 24, 30, 32, 37, free, 40, 39, 53, 49, 50, 59, 55, 70, 75, 64, 72, 68},
}
