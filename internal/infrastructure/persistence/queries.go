package persistence

// The calendar stores execute fixed named queries rather than GORM model
// lookups; each mirrors one result set of the procurement schema's reporting
// procedures. Output columns are aliased to the snake_case names GORM maps
// onto the domain record fields.

const (
	requisitionHeadersQuery = `
SELECT pr.pr_code AS code, s.staff_name AS added_by, pr.added_date
FROM purchase_requisitions pr
JOIN staffs s ON s.staff_code = pr.added_by
ORDER BY pr.added_date`

	requisitionDetailQuery = `
SELECT pr.pr_code, pr.required_date, st.status_name, pr.description,
       s.staff_name AS added_by, pr.added_date,
       ap.staff_name AS approved_by, pr.approved_date, p.priority_name
FROM purchase_requisitions pr
JOIN statuses st ON st.status_id = pr.status_id
JOIN staffs s ON s.staff_code = pr.added_by
LEFT JOIN staffs ap ON ap.staff_code = pr.approved_by
JOIN priorities p ON p.priority_id = pr.priority_id
WHERE pr.pr_code = ?`

	requisitionItemsQuery = `
SELECT pri.pr_code, pri.pr_item_code, i.item_code, i.item_name,
       pri.required_quantity
FROM purchase_requisition_items pri
JOIN items i ON i.item_code = pri.item_code
WHERE pri.pr_code = ?
ORDER BY pri.pr_item_code`

	quotationRequestHeadersQuery = `
SELECT rfq.rfq_code AS code, s.staff_name AS added_by, rfq.added_date,
       rfq.expected_date AS end_date
FROM request_for_quotations rfq
JOIN staffs s ON s.staff_code = rfq.added_by
ORDER BY rfq.added_date`

	quotationRequestDetailQuery = `
SELECT rfq.rfq_code, rfq.pr_code, s.staff_name AS added_by, rfq.added_date,
       rfq.expected_date, rfq.description,
       a.accountant_name, a.accountant_email, rfq.delivery_address
FROM request_for_quotations rfq
JOIN staffs s ON s.staff_code = rfq.added_by
LEFT JOIN accountants a ON a.accountant_id = rfq.accountant_id
WHERE rfq.rfq_code = ?`

	quotationRequestItemsQuery = `
SELECT ri.rfq_code, ri.pr_item_code, i.item_code, i.item_name,
       ri.required_quantity
FROM request_for_quotation_items ri
JOIN items i ON i.item_code = ri.item_code
WHERE ri.rfq_code = ?
ORDER BY ri.pr_item_code`

	quotationRegistrationHeadersQuery = `
SELECT COUNT(*) AS count, DATE(rq.added_date) AS date,
       MIN(s.staff_name) AS added_by
FROM register_quotations rq
JOIN staffs s ON s.staff_code = rq.added_by
GROUP BY DATE(rq.added_date)
ORDER BY DATE(rq.added_date)`

	quotationRegistrationDetailQuery = `
SELECT rq.register_quotation_code, rq.rfq_code, v.vendor_name,
       rq.delivery_date, st.status_name, s.staff_name AS added_by,
       ap.staff_name AS approved_by, rq.added_date, rq.approved_date,
       rq.shipping_charges
FROM register_quotations rq
JOIN vendors v ON v.vendor_code = rq.vendor_code
JOIN statuses st ON st.status_id = rq.status_id
JOIN staffs s ON s.staff_code = rq.added_by
LEFT JOIN staffs ap ON ap.staff_code = rq.approved_by
WHERE DATE(rq.added_date) = DATE(?)
ORDER BY rq.register_quotation_code`

	orderHeadersQuery = `
SELECT po.po_code AS code, s.staff_name AS added_by, po.added_date
FROM purchase_orders po
JOIN staffs s ON s.staff_code = po.added_by
ORDER BY po.added_date`

	orderDetailQuery = `
SELECT po.po_code, st.status_name, po.added_date, po.approved_date,
       po.total_amount, po.billing_address, v.vendor_name,
       s.staff_name AS added_by, ap.staff_name AS approved_by,
       po.shipping_charges, a.accountant_name
FROM purchase_orders po
JOIN statuses st ON st.status_id = po.status_id
JOIN vendors v ON v.vendor_code = po.vendor_code
JOIN staffs s ON s.staff_code = po.added_by
LEFT JOIN staffs ap ON ap.staff_code = po.approved_by
LEFT JOIN accountants a ON a.accountant_id = po.accountant_id
WHERE po.po_code = ?`

	orderItemsQuery = `
SELECT poi.po_code, poi.po_item_code, poi.rq_item_code, i.item_code,
       i.item_name, poi.cost_per_unit, poi.discount, poi.quantity,
       st.status_name
FROM purchase_order_items poi
JOIN items i ON i.item_code = poi.item_code
JOIN statuses st ON st.status_id = poi.status_id
WHERE poi.po_code = ?
ORDER BY poi.po_item_code`

	orderTermsQuery = `
SELECT tc.term_condition
FROM purchase_order_terms tc
WHERE tc.po_code = ?
ORDER BY tc.sort_order`

	receiptHeadersQuery = `
SELECT grn.grn_code AS code, s.staff_name AS added_by, grn.added_date
FROM goods_receipt_notes grn
JOIN staffs s ON s.staff_code = grn.added_by
ORDER BY grn.added_date`

	receiptDetailQuery = `
SELECT grn.po_code, grn.grn_code, po.added_date AS po_date,
       grn.added_date AS grn_date, grn.invoice_date, v.vendor_name,
       grn.invoice_code, grn.company_address, grn.billing_address,
       st.status_name, grn.total_amount, grn.shipping_charges
FROM goods_receipt_notes grn
JOIN purchase_orders po ON po.po_code = grn.po_code
JOIN vendors v ON v.vendor_code = po.vendor_code
JOIN statuses st ON st.status_id = grn.status_id
WHERE grn.grn_code = ?`

	receiptItemsQuery = `
SELECT gi.grn_code, gi.grn_item_code, i.item_code, i.item_name,
       gi.quantity, gi.cost_per_unit, gi.discount, gi.tax_rate,
       gi.final_amount
FROM goods_receipt_note_items gi
JOIN items i ON i.item_code = gi.item_code
WHERE gi.grn_code = ?
ORDER BY gi.grn_item_code`

	returnHeadersQuery = `
SELECT gr.goods_return_code AS code, s.staff_name AS added_by, gr.added_date
FROM goods_returns gr
JOIN staffs s ON s.staff_code = gr.added_by
ORDER BY gr.added_date`

	returnDetailQuery = `
SELECT gr.goods_return_code, gr.grn_code, gr.transporter_name,
       gr.transport_contact_no, gr.vehicle_no, gr.vehicle_type, gr.reason,
       s.staff_name AS added_by, gr.added_date, st.status_name
FROM goods_returns gr
JOIN staffs s ON s.staff_code = gr.added_by
JOIN statuses st ON st.status_id = gr.status_id
WHERE gr.goods_return_code = ?`

	returnItemsQuery = `
SELECT gri.gr_item_code, i.item_code, i.item_name, gri.reason
FROM goods_return_items gri
JOIN items i ON i.item_code = gri.item_code
WHERE gri.goods_return_code = ?
ORDER BY gri.gr_item_code`

	qualityCheckHeadersQuery = `
SELECT COUNT(*) AS count, DATE(qc.added_date) AS date, st.status_name AS status
FROM quality_checks qc
JOIN statuses st ON st.status_id = qc.status_id
GROUP BY DATE(qc.added_date), st.status_name
ORDER BY DATE(qc.added_date), st.status_name`

	qualityCheckDetailQuery = `
SELECT qc.quality_check_code, st.status_name, qc.grn_items_code,
       i.item_code, i.item_name, qc.quantity, qc.inspection_frequency,
       qc.sample_quality_checked, qc.sample_test_failed,
       s.staff_name AS qc_added_by, qc.added_date AS qc_added_date,
       f.staff_name AS qc_failed_added_by, qc.failed_date AS qc_failed_date,
       qc.reason
FROM quality_checks qc
JOIN statuses st ON st.status_id = qc.status_id
JOIN goods_receipt_note_items gi ON gi.grn_item_code = qc.grn_items_code
JOIN items i ON i.item_code = gi.item_code
JOIN staffs s ON s.staff_code = qc.added_by
LEFT JOIN staffs f ON f.staff_code = qc.failed_added_by
WHERE DATE(qc.added_date) = DATE(?) AND st.status_name = ?
ORDER BY qc.quality_check_code`

	stockRefillHeadersQuery = `
SELECT COUNT(*) AS count, DATE(sr.added_date) AS date,
       sr.added_by AS staff_code, MIN(s.staff_name) AS added_by
FROM stock_refill_requests sr
JOIN staffs s ON s.staff_code = sr.added_by
GROUP BY DATE(sr.added_date), sr.added_by
ORDER BY DATE(sr.added_date), sr.added_by`

	stockRefillDetailQuery = `
SELECT i.item_code, i.item_name, sr.quantity, sr.required_date,
       st.status_name, s.staff_name AS added_by, sr.added_date
FROM stock_refill_requests sr
JOIN items i ON i.item_code = sr.item_code
JOIN statuses st ON st.status_id = sr.status_id
JOIN staffs s ON s.staff_code = sr.added_by
WHERE DATE(sr.added_date) = DATE(?) AND sr.added_by = ?
ORDER BY i.item_code`

	justInTimeHeadersQuery = `
SELECT COUNT(*) AS count, DATE(jit.added_date) AS date,
       jit.added_by AS staff_code, MIN(s.staff_name) AS added_by
FROM just_in_time_requests jit
JOIN staffs s ON s.staff_code = jit.added_by
GROUP BY DATE(jit.added_date), jit.added_by
ORDER BY DATE(jit.added_date), jit.added_by`

	justInTimeDetailQuery = `
SELECT i.item_code, i.item_name, jit.quantity, jit.required_date,
       st.status_name, s.staff_name AS added_by, jit.added_date
FROM just_in_time_requests jit
JOIN items i ON i.item_code = jit.item_code
JOIN statuses st ON st.status_id = jit.status_id
JOIN staffs s ON s.staff_code = jit.added_by
WHERE DATE(jit.added_date) = DATE(?) AND jit.added_by = ?
ORDER BY i.item_code`

	materialPlanningHeadersQuery = `
SELECT mrp.material_req_planning_code AS code, s.staff_name AS added_by,
       mrp.added_date
FROM material_req_plannings mrp
JOIN staffs s ON s.staff_code = mrp.added_by
ORDER BY mrp.added_date`

	materialPlanningDetailQuery = `
SELECT mrp.material_req_planning_code, mrp.plan_name, mrp.plan_year,
       mrp.from_date, mrp.to_date, st.status_name,
       s.staff_name AS added_by, mrp.added_date,
       ap.staff_name AS approved_by, mrp.approved_date, mrp.reason
FROM material_req_plannings mrp
JOIN statuses st ON st.status_id = mrp.status_id
JOIN staffs s ON s.staff_code = mrp.added_by
LEFT JOIN staffs ap ON ap.staff_code = mrp.approved_by
WHERE mrp.material_req_planning_code = ?`

	materialPlanningItemsQuery = `
SELECT mi.issue_items_id, i.item_code, i.item_name, mi.quantity
FROM material_req_planning_items mi
JOIN items i ON i.item_code = mi.item_code
WHERE mi.material_req_planning_code = ?
ORDER BY mi.issue_items_id`

	readPermissionsQuery = `
SELECT pt.permission_type AS type, p.permission_name AS name
FROM staff_permissions sp
JOIN permissions p ON p.permission_id = sp.permission_id
JOIN permission_types pt ON pt.permission_type_id = p.permission_type_id
WHERE sp.staff_code = ? AND pt.permission_type = 'Read'
ORDER BY sp.assigned_at`

	allPermissionsQuery = `
SELECT pt.permission_type AS type, p.permission_name AS name
FROM staff_permissions sp
JOIN permissions p ON p.permission_id = sp.permission_id
JOIN permission_types pt ON pt.permission_type_id = p.permission_type_id
WHERE sp.staff_code = ?
ORDER BY pt.permission_type, sp.assigned_at`

	notificationsAllQuery = `
SELECT n.notification_id, n.staff_code, n.message, n.is_read
FROM notifications n
WHERE n.staff_code = ?
ORDER BY n.notification_id DESC`

	notificationsUnreadQuery = `
SELECT n.notification_id, n.staff_code, n.message, n.is_read
FROM notifications n
WHERE n.staff_code = ? AND n.is_read = FALSE
ORDER BY n.notification_id DESC`

	notificationMarkReadQuery = `
UPDATE notifications SET is_read = TRUE
WHERE staff_code = ? AND notification_id = ?`

	notificationMarkAllReadQuery = `
UPDATE notifications SET is_read = TRUE
WHERE staff_code = ? AND is_read = FALSE`
)
